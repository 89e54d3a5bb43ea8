package entities

import "time"

// ModeBatch records one wholesale save of the mode mapping.
type ModeBatch struct {
	ID        string    `json:"id"`
	Entries   int       `json:"entries"`
	CreatedAt time.Time `json:"created_at"`
}
