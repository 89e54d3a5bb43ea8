package handlers

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// ModeHandler handles mode annotation edits.
type ModeHandler struct {
	service *services.ModeService
}

// NewModeHandler creates a new ModeHandler.
func NewModeHandler(service *services.ModeService) *ModeHandler {
	return &ModeHandler{
		service: service,
	}
}

// HandleSet parses status (key, label, or "none") and stores it for id.
func (h *ModeHandler) HandleSet(ctx context.Context, id int, status string) (entities.ModeStatus, error) {
	parsed, err := entities.ParseModeStatus(status)
	if err != nil {
		return entities.ModeNone, err
	}
	if err := h.service.Set(ctx, id, parsed); err != nil {
		return entities.ModeNone, err
	}
	return parsed, nil
}

// HandleGet returns the status of id.
func (h *ModeHandler) HandleGet(ctx context.Context, id int) (entities.ModeStatus, error) {
	return h.service.Get(ctx, id)
}

// HandleList returns every annotated species.
func (h *ModeHandler) HandleList(ctx context.Context) ([]services.ModeEntry, error) {
	return h.service.List(ctx)
}

// HandleHistory returns recent saves when the store records them.
func (h *ModeHandler) HandleHistory(ctx context.Context, limit int) ([]entities.ModeBatch, error) {
	return h.service.History(ctx, limit)
}
