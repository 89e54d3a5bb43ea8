// Package parsers provides parsers for importing mode annotations from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawMode represents one imported annotation before validation.
type RawMode struct {
	ID      string
	Status  string
	LineNum int // Line or entry number in the source (set by parser)
}

// Parser defines the interface for parsing modes from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawMode, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
