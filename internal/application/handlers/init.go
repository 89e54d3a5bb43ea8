// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

// StoreOpener opens the mode store selected by cfg.
type StoreOpener func(cfg *config.Config, basePath string) (ports.ModeStore, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openStore StoreOpener
}

// NewInitHandler creates a new init handler.
func NewInitHandler(openStore StoreOpener) *InitHandler {
	return &InitHandler{
		openStore: openStore,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	ModesPath  string
	Backend    string
}

// Handle writes the default config and prepares the mode store.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("dex already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if h.openStore != nil {
		store, err := h.openStore(cfg, basePath)
		if err != nil {
			return nil, fmt.Errorf("opening mode store: %w", err)
		}
		if closer, ok := store.(io.Closer); ok {
			defer closer.Close()
		}
		if sm, ok := store.(ports.SchemaManager); ok {
			if err := sm.EnsureSchema(ctx); err != nil {
				return nil, fmt.Errorf("creating mode store schema: %w", err)
			}
		}
		if _, err := store.Load(ctx); err != nil {
			return nil, fmt.Errorf("reading mode store: %w", err)
		}
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		ModesPath:  cfg.ModesPath(basePath),
		Backend:    cfg.Modes.Backend,
	}, nil
}
