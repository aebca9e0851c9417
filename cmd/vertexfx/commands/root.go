package commands

import (
	"os"

	"github.com/spf13/cobra"

	"vertexfx/internal/app"
)

var (
	home     string
	remote   string
	logLevel string
	appCtx   *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vertexfx",
		Short:        "Sample, inspect and preview parametric motion curves",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if remote != "" {
				cfg.Remote = remote
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default $VERTEXFX_HOME or ~/.vertexfx)")
	root.PersistentFlags().StringVar(&remote, "remote", "", "vertexfxd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default warn)")

	root.AddCommand(kindsCmd(), pointCmd(), sampleCmd(), sceneCmd(), pathsCmd(), fingerprintCmd(), previewCmd())
	return root
}
