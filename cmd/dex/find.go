package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Search species by name",
		Long:  "Fuzzy search over localized names and English keys. Hiragana, katakana and full-width input match alike.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultFindLimit, "Maximum number of results")

	return cmd
}

func runFind(cmd *cobra.Command, query string, limit int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		matches, err := d.DetailHandler.HandleFind(ctx, query, limit)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(matches) == 0 {
			fmt.Fprintln(out, "No species found.")
			return nil
		}

		for _, m := range matches {
			fmt.Fprintf(out, "%03d  %s (%s)  %.2f\n", m.Species.ID, m.Species.DisplayName(), m.Species.Key, m.Score)
		}
		return nil
	})
}
