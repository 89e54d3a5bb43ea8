package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/domain/services"
	"github.com/ersonp/dex-core/internal/infrastructure/cache"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/ersonp/dex-core/internal/infrastructure/jsonstore"
	"github.com/ersonp/dex-core/internal/infrastructure/pokeapi"
	"github.com/ersonp/dex-core/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config        *config.Config
	TableHandler  *handlers.TableHandler
	DetailHandler *handlers.DetailHandler
	ModeHandler   *handlers.ModeHandler
	ImportHandler *handlers.ImportHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	return withDepsAt(ctx, cwd, fn)
}

// withDepsAt is withDeps rooted at basePath.
func withDepsAt(ctx context.Context, basePath string, fn func(*Deps) error) error {
	cfg, err := config.Load(basePath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := configureLogging(globalLogLevel, cfg.LogLevel); err != nil {
		return err
	}

	client, err := pokeapi.NewClient(cfg.API)
	if err != nil {
		return fmt.Errorf("creating pokeapi client: %w", err)
	}

	// One cache per process, shared by every component.
	responses := cache.New(pokeapi.NewRetrying(client, cfg.API.Retries))
	defer func() {
		stats := responses.Stats()
		slog.Debug("response cache", "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)
	}()
	api := pokeapi.NewAPI(responses, cfg.API.BaseURL)

	store, err := openModeStore(cfg, basePath)
	if err != nil {
		return fmt.Errorf("opening mode store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	if sm, ok := store.(ports.SchemaManager); ok {
		if err := sm.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensuring mode store schema: %w", err)
		}
	}

	localizer := services.NewLocalizer(cfg.Languages...)
	speciesService := services.NewSpeciesService(api, localizer, cfg.API.SpeciesLimit, cfg.API.Concurrency)
	availabilityService := services.NewAvailabilityService(api, cfg.API.Concurrency)
	weaknessService := services.NewWeaknessService(api, localizer)
	detailService := services.NewDetailService(api, localizer, weaknessService, speciesService)
	modeService := services.NewModeService(store)

	deps := &Deps{
		Config:        cfg,
		TableHandler:  handlers.NewTableHandler(speciesService, availabilityService, modeService),
		DetailHandler: handlers.NewDetailHandler(detailService, speciesService),
		ModeHandler:   handlers.NewModeHandler(modeService),
		ImportHandler: handlers.NewImportHandler(services.NewImportService(modeService)),
	}

	return fn(deps)
}

// openModeStore opens the mode store backend selected in cfg.
func openModeStore(cfg *config.Config, basePath string) (ports.ModeStore, error) {
	path := cfg.ModesPath(basePath)

	switch cfg.Modes.Backend {
	case config.BackendJSON:
		return jsonstore.New(path)
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating mode store directory: %w", err)
		}
		return sqlite.NewRepository(path)
	default:
		return nil, errors.New("unknown mode store backend: " + cfg.Modes.Backend)
	}
}
