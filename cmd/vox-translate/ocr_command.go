package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vox-translate/internal/app"
	"vox-translate/internal/ocr"
)

func newOCRCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ocr <image>",
		Short: "Print the text recognized in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !ocr.IsImagePath(args[0]) {
				return fmt.Errorf("%s: unsupported image type", args[0])
			}

			text, err := app.NewOCR(cfg, ctx.ensureLogger()).ExtractText(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
