package ports

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// ModeStore persists the species status annotations as one document.
// Callers load, modify and save the whole mapping; nothing is held between calls.
type ModeStore interface {
	// Load returns the stored mapping. A store that was never saved yields an empty mapping.
	Load(ctx context.Context) (entities.ModeMap, error)

	// Save replaces the stored mapping with modes.
	Save(ctx context.Context, modes entities.ModeMap) error
}

// ModeHistory is implemented by stores that keep a record of saves.
type ModeHistory interface {
	// Batches returns the most recent saves, newest first.
	Batches(ctx context.Context, limit int) ([]entities.ModeBatch, error)
}
