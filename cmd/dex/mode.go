package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

func newModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Manage collection mode annotations",
		Long:  "Annotate species as dex-only (図鑑) or boxed (ボックス). \"none\" clears the annotation.",
	}

	cmd.AddCommand(
		newModeSetCmd(),
		newModeGetCmd(),
		newModeListCmd(),
		newModeHistoryCmd(),
		newModeImportCmd(),
	)

	return cmd
}

func newModeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <status>",
		Short: "Set the mode of a species",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpeciesID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				status, err := d.ModeHandler.HandleSet(ctx, id, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%03d: %s\n", id, modeDisplay(status))
				return nil
			})
		},
	}
}

func newModeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show the mode of a species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpeciesID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				status, err := d.ModeHandler.HandleGet(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%03d: %s\n", id, modeDisplay(status))
				return nil
			})
		},
	}
}

func newModeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List annotated species",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				modes, err := d.ModeHandler.HandleList(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(modes) == 0 {
					fmt.Fprintln(out, "No annotated species.")
					return nil
				}
				for _, m := range modes {
					fmt.Fprintf(out, "%03d: %s\n", m.ID, modeDisplay(m.Status))
				}
				return nil
			})
		},
	}
}

func newModeHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent mode store saves (sqlite backend)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				batches, err := d.ModeHandler.HandleHistory(ctx, limit)
				if errors.Is(err, services.ErrHistoryUnsupported) {
					return fmt.Errorf("%w (set modes.backend: %s)", err, "sqlite")
				}
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, b := range batches {
					fmt.Fprintf(out, "%s  %s  %d entries\n", b.CreatedAt.Local().Format(time.DateTime), b.ID, b.Entries)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of saves to show")

	return cmd
}

type importFlags struct {
	format     string
	dryRun     bool
	onConflict string
}

func newModeImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import mode annotations from JSON or CSV",
		Long: "Imports annotations from a JSON object {\"1\": \"boxed\"} or a CSV file with id and status columns.\n" +
			"Statuses may be keys (dex-only, boxed, none) or labels (図鑑, ボックス).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModeImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().StringVar(&flags.onConflict, "on-conflict", "skip", "Conflict handling (skip, overwrite)")

	return cmd
}

func runModeImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	// Validate on-conflict flag
	strategy := services.ConflictStrategy(flags.onConflict)
	if strategy != services.ConflictSkip && strategy != services.ConflictOverwrite {
		return fmt.Errorf("invalid --on-conflict value %q (valid: skip, overwrite)", flags.onConflict)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Importing %s...\n", filePath)

		result, err := d.ImportHandler.Handle(ctx, filePath, handlers.ImportOptions{
			Format:     flags.format,
			DryRun:     flags.dryRun,
			OnConflict: strategy,
		})
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		printImportResult(out, result, flags.dryRun)
		return nil
	})
}

func modeDisplay(status entities.ModeStatus) string {
	if status == entities.ModeNone {
		return "none"
	}
	return fmt.Sprintf("%s (%s)", status.Label(), status)
}
