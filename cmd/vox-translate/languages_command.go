package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vox-translate/internal/catalog"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages [query]",
		Short: "List destination languages, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			for name := range cat.Filter(query) {
				entry, _ := cat.Lookup(name)
				fmt.Fprintf(out, "%-20s %s\n", entry.Code, entry.DisplayName)
			}
			return nil
		},
	}
}
