package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the detail of one species",
		Long:  "Shows encounters per game, types, weaknesses, level-up and egg moves, evolution and egg groups.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpeciesID(args[0])
			if err != nil {
				return err
			}
			return runShow(cmd, id, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json)")

	return cmd
}

func runShow(cmd *cobra.Command, id int, format string) error {
	if !slices.Contains(showFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, showFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		detail, err := d.DetailHandler.HandleDetail(ctx, id)
		if err != nil {
			return err
		}
		mode, err := d.ModeHandler.HandleGet(ctx, id)
		if err != nil {
			return err
		}
		return renderDetail(cmd.OutOrStdout(), format, detail, mode)
	})
}

func parseSpeciesID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid species id %q", arg)
	}
	return id, nil
}
