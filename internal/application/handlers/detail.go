package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// DetailHandler handles per-species detail requests.
type DetailHandler struct {
	details *services.DetailService
	species *services.SpeciesService
}

// NewDetailHandler creates a new DetailHandler.
func NewDetailHandler(details *services.DetailService, species *services.SpeciesService) *DetailHandler {
	return &DetailHandler{
		details: details,
		species: species,
	}
}

// HandleDetail returns the detail bundle of species id.
func (h *DetailHandler) HandleDetail(ctx context.Context, id int) (*entities.Detail, error) {
	if !entities.ValidSpeciesID(id) {
		return nil, fmt.Errorf("species id %d out of range 1..%d", id, entities.MaxSpeciesID)
	}
	detail, err := h.details.Detail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("building detail for %d: %w", id, err)
	}
	return detail, nil
}

// HandleFind searches species by localized name or key.
func (h *DetailHandler) HandleFind(ctx context.Context, query string, limit int) ([]services.Match, error) {
	return h.species.Find(ctx, query, limit)
}
