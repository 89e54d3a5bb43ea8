package entities

import (
	"fmt"
	"strings"
)

// ModeStatus is the user's collection status for a species.
type ModeStatus string

// Mode statuses. ModeNone is never stored.
const (
	ModeNone    ModeStatus = ""
	ModeDexOnly ModeStatus = "dex-only"
	ModeBoxed   ModeStatus = "boxed"
)

// ValidModeStatuses lists the non-empty statuses.
var ValidModeStatuses = []ModeStatus{ModeDexOnly, ModeBoxed}

var modeLabels = map[ModeStatus]string{
	ModeNone:    "",
	ModeDexOnly: "図鑑",
	ModeBoxed:   "ボックス",
}

// Label returns the display string of the status.
func (m ModeStatus) Label() string {
	return modeLabels[m]
}

// ParseModeStatus accepts a status key or its display label.
// "none" and "" both mean ModeNone.
func ParseModeStatus(s string) (ModeStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return ModeNone, nil
	}
	for status, label := range modeLabels {
		if status == ModeNone {
			continue
		}
		if strings.EqualFold(s, string(status)) || s == label {
			return status, nil
		}
	}
	return ModeNone, fmt.Errorf("invalid mode status %q (valid: none, dex-only, boxed)", s)
}

// ModeMap maps species id to its status. Species without a status are absent.
type ModeMap map[int]ModeStatus

// Get returns the status of id, ModeNone when absent.
func (m ModeMap) Get(id int) ModeStatus {
	return m[id]
}

// Set stores status for id; ModeNone removes the entry.
func (m ModeMap) Set(id int, status ModeStatus) {
	if status == ModeNone {
		delete(m, id)
		return
	}
	m[id] = status
}
