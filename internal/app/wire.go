package app

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"vertexfx/internal/client"
	"vertexfx/internal/domain"
	"vertexfx/internal/logger"
	"vertexfx/internal/services/sampler"
	"vertexfx/internal/store"
)

// Wire bundles the stores, services and clients the CLI commands use.
type Wire struct {
	Paths   domain.PathStore
	Service *sampler.Service
	// Sampler is Remote when one is configured and Service otherwise.
	Sampler domain.Sampler
	Remote  domain.RemoteClient
	HTTP    *http.Client
	Log     *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("app: Home must be set")
	}
	log := logger.New(cfg.LogLevel)

	// File-based path store
	paths := store.NewPathFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	svc := sampler.New(paths, cfg.CacheSize, log)

	w := &Wire{
		Paths:   paths,
		Service: svc,
		Sampler: svc,
		HTTP:    httpClient,
		Log:     log,
	}
	if cfg.Remote != "" {
		rc := client.NewHTTP(cfg.Remote, httpClient)
		w.Remote = rc
		w.Sampler = rc
	}
	return w, nil
}
