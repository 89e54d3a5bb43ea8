package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/infrastructure/parsers"
)

// ConflictStrategy defines how to handle species that already have a status.
type ConflictStrategy string

const (
	// ConflictSkip keeps the existing status.
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite replaces the existing status.
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun     bool             // Validate without saving
	OnConflict ConflictStrategy // How to handle annotated species
}

// ImportError represents an error for a specific entry during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportService merges imported annotations into the mode store.
type ImportService struct {
	modes *ModeService
}

// NewImportService creates a new import service.
func NewImportService(modes *ModeService) *ImportService {
	return &ImportService{modes: modes}
}

type validMode struct {
	id     int
	status entities.ModeStatus
}

// Import validates raw entries and saves the merged mapping once.
// Invalid entries are reported and never abort the import.
func (s *ImportService) Import(ctx context.Context, raws []parsers.RawMode, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	valid, validationErrors := validateModes(raws)
	result.Errors = validationErrors

	if len(valid) == 0 {
		return result, nil
	}

	current, err := s.modes.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range valid {
		if opts.OnConflict == ConflictSkip && current.Get(m.id) != entities.ModeNone {
			result.Skipped++
			continue
		}
		current.Set(m.id, m.status)
		result.Imported++
	}

	if opts.DryRun || result.Imported == 0 {
		return result, nil
	}

	if err := s.modes.store.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("saving modes: %w", err)
	}
	return result, nil
}

// validateModes validates raw entries and returns valid ones with any errors.
func validateModes(raws []parsers.RawMode) ([]validMode, []ImportError) {
	valid := make([]validMode, 0, len(raws))
	var errors []ImportError

	for i := range raws {
		raw := &raws[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		m, err := validateRawMode(raw, lineNum)
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		valid = append(valid, m)
	}

	return valid, errors
}

// validateRawMode validates a single entry and returns an error if invalid.
func validateRawMode(raw *parsers.RawMode, lineNum int) (validMode, *ImportError) {
	if raw.ID == "" {
		return validMode{}, &ImportError{Line: lineNum, Field: "id", Message: "missing required field: id"}
	}

	id, err := strconv.Atoi(raw.ID)
	if err != nil || !entities.ValidSpeciesID(id) {
		return validMode{}, &ImportError{
			Line:    lineNum,
			Field:   "id",
			Value:   raw.ID,
			Message: fmt.Sprintf("invalid species id %q (valid: 1..%d)", raw.ID, entities.MaxSpeciesID),
		}
	}

	status, err := entities.ParseModeStatus(raw.Status)
	if err != nil {
		return validMode{}, &ImportError{Line: lineNum, Field: "status", Value: raw.Status, Message: err.Error()}
	}

	return validMode{id: id, status: status}, nil
}
