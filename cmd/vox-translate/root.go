package main

import (
	"github.com/spf13/cobra"

	"vox-translate/internal/app"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var envFileFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &envFileFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "vox-translate",
		Short:         "Desktop translator with speech and image input",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.ensureLogger()

			application, err := app.NewApplication(cfg, app.BuildServices(cfg, log), log)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "Dotenv file with VOX_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newTranslateCommand(ctx))
	rootCmd.AddCommand(newOCRCommand(ctx))

	return rootCmd
}
