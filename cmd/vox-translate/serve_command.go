package main

import (
	"github.com/spf13/cobra"

	"vox-translate/internal/api"
	"vox-translate/internal/app"
	"vox-translate/internal/catalog"
	"vox-translate/internal/shutdown"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the translation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.ensureLogger()
			if addr != "" {
				cfg.Server.Addr = addr
			}

			chain, detector := app.NewTranslation(cfg, log)
			router := api.NewRouter(chain, detector, catalog.Default(), log, api.Options{
				AllowedOrigins: cfg.Server.AllowedOrigins,
				RateLimit:      cfg.Server.RateLimit,
				RateWindow:     cfg.Server.RateWindow(),
			})

			mgr := shutdown.NewManager(log)
			mgr.Listen()

			err = api.NewServer(cfg.Server.Addr, router, log).Run(mgr.Context())
			mgr.Shutdown()
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
