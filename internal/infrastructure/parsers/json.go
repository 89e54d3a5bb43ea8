package parsers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// JSONParser parses the mode document format: {"1": "boxed", "25": "dex-only"}.
type JSONParser struct{}

// Parse reads a JSON object from the reader and returns its entries ordered
// by species id.
func (p *JSONParser) Parse(r io.Reader) ([]RawMode, error) {
	var doc map[string]string

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	modes := make([]RawMode, 0, len(doc))
	for id, status := range doc {
		modes = append(modes, RawMode{ID: id, Status: status})
	}
	sort.Slice(modes, func(i, j int) bool {
		a, errA := strconv.Atoi(modes[i].ID)
		b, errB := strconv.Atoi(modes[j].ID)
		if errA != nil || errB != nil {
			return modes[i].ID < modes[j].ID
		}
		return a < b
	})

	// Entry numbers are 1-indexed positions in id order
	for i := range modes {
		modes[i].LineNum = i + 1
	}

	return modes, nil
}
