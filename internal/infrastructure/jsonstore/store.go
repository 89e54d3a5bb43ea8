// Package jsonstore provides a JSON document implementation of the ModeStore interface.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// Store keeps the mode mapping as one JSON object keyed by species id,
// e.g. {"1": "boxed", "25": "dex-only"}.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ ports.ModeStore = (*Store)(nil)

// New creates a store backed by the file at path. The file need not exist.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("mode file path is required")
	}
	return &Store{path: path}, nil
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. An absent file is an empty mapping.
func (s *Store) Load(_ context.Context) (entities.ModeMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.ModeMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading mode file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing mode file %s: %w", s.path, err)
	}

	modes := make(entities.ModeMap, len(raw))
	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("mode file %s: invalid species id %q", s.path, key)
		}
		status, err := entities.ParseModeStatus(value)
		if err != nil {
			return nil, fmt.Errorf("mode file %s: species %d: %w", s.path, id, err)
		}
		modes.Set(id, status)
	}
	return modes, nil
}

// Save writes the whole mapping to a temporary file and renames it over the
// document, so readers never see a partial write.
func (s *Store) Save(_ context.Context, modes entities.ModeMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make(map[string]string, len(modes))
	for id, status := range modes {
		if status == entities.ModeNone {
			continue
		}
		raw[strconv.Itoa(id)] = string(status)
	}

	// encoding/json sorts map keys, so output is stable.
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling modes: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating mode directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing mode file: %w", err)
	}
	return nil
}
