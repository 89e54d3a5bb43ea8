package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// TableHandler builds the availability table.
type TableHandler struct {
	species      *services.SpeciesService
	availability *services.AvailabilityService
	modes        *services.ModeService
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(
	species *services.SpeciesService,
	availability *services.AvailabilityService,
	modes *services.ModeService,
) *TableHandler {
	return &TableHandler{
		species:      species,
		availability: availability,
		modes:        modes,
	}
}

// TableOptions controls which rows are returned.
type TableOptions struct {
	// Games are version labels (FR, LG, R, S, E). When set, only species
	// available in at least one of them are kept.
	Games []string
}

// TableRow is one species of the table.
type TableRow struct {
	ID       int                 `json:"id"`
	Name     string              `json:"name"`
	Mode     entities.ModeStatus `json:"mode"`
	Versions entities.VersionSet `json:"-"`
	Err      error               `json:"-"`
}

// Matrix returns the label to mark mapping of the row.
func (r TableRow) Matrix() map[string]string {
	return r.Versions.Matrix()
}

// TableResult contains the rows and how many species could not be fully
// resolved.
type TableResult struct {
	Rows   []TableRow `json:"rows"`
	Total  int        `json:"total"`
	Failed int        `json:"failed"`
}

// HandleTable lists every species with its availability and mode.
func (h *TableHandler) HandleTable(ctx context.Context, opts TableOptions) (*TableResult, error) {
	games, err := parseGames(opts.Games)
	if err != nil {
		return nil, err
	}

	catalog, err := h.species.List(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]entities.SpeciesRef, len(catalog))
	for i, entry := range catalog {
		refs[i] = entry.SpeciesRef
	}

	availability, err := h.availability.ForAll(ctx, refs)
	if err != nil {
		return nil, err
	}

	modes, err := h.modes.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &TableResult{Total: len(catalog)}
	for i, entry := range catalog {
		row := TableRow{
			ID:       entry.ID,
			Name:     entry.DisplayName(),
			Mode:     modes.Get(entry.ID),
			Versions: availability[i].Versions,
			Err:      firstErr(entry.Err, availability[i].Err),
		}
		if row.Err != nil {
			result.Failed++
		}
		if len(games) > 0 && !row.Versions.AnyLabel(games) {
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// parseGames resolves version labels, case-insensitively.
func parseGames(labels []string) ([]entities.Version, error) {
	games := make([]entities.Version, 0, len(labels))
	for _, label := range labels {
		v, ok := entities.VersionByLabel(strings.ToUpper(strings.TrimSpace(label)))
		if !ok {
			return nil, fmt.Errorf("unknown game %q (valid: %s)", label, strings.Join(entities.VersionLabels(), ", "))
		}
		games = append(games, v)
	}
	return games, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
