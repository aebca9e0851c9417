package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"vertexfx/internal/app"
	"vertexfx/internal/httpapi"
	"vertexfx/internal/logger"
	"vertexfx/internal/services/sampler"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadServer()
	if err != nil {
		logger.New("error").Error("load config", "err", err)
		return err
	}
	log := logger.New(cfg.LogLevel)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.New(sampler.New(nil, cfg.CacheSize, log), log),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("vertexfxd listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		log.Error("serve", "err", err)
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("shutdown", "err", err)
		return err
	}
	return nil
}
