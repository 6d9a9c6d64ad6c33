package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vox-translate/internal/app"
	"vox-translate/internal/catalog"
)

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	var to string
	var from string

	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.ensureLogger()

			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return fmt.Errorf("no text to translate")
			}

			target := to
			if target == "" {
				target = cfg.Translate.DefaultDestination
			}
			cat := catalog.Default()
			target = cat.Resolve(target, "en")
			source := ""
			if from != "" {
				source = cat.Resolve(from, "")
			}

			chain, _ := app.NewTranslation(cfg, log)
			res, err := chain.Translate(cmd.Context(), text, source, target)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			log.Debug("CLI", "translated", map[string]interface{}{
				"method": res.Method,
				"target": target,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "Destination language name or code")
	cmd.Flags().StringVarP(&from, "from", "f", "", "Source language name or code (default: detect)")
	return cmd
}
