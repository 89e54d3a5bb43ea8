package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
)

type listFlags struct {
	games  []string
	format string
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List species with their availability",
		Long: "Lists every species with its localized name, mode annotation and the games it can be caught in.\n" +
			"--game keeps species obtainable in any of the given games (FR, LG, R, S, E).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.games, "game", "g", nil, "Only species obtainable in these games (repeatable or comma-separated)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "Output format (table, json, csv, markdown)")

	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	if !slices.Contains(listFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, listFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.TableHandler.HandleTable(ctx, handlers.TableOptions{Games: flags.games})
		if err != nil {
			return fmt.Errorf("building table: %w", err)
		}

		if err := renderTable(cmd.OutOrStdout(), flags.format, result); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}

		if result.Failed > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d species could not be fully loaded\n", result.Failed, result.Total)
		}
		return nil
	})
}
