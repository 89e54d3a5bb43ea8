package mocks

import "context"

// SchemaStore is a mock ModeStore that also implements ports.SchemaManager.
type SchemaStore struct {
	*ModeStore
	EnsureErr error

	// Call tracking
	EnsureSchemaCallCount int
}

// NewSchemaStore creates an empty mock SchemaStore.
func NewSchemaStore() *SchemaStore {
	return &SchemaStore{ModeStore: NewModeStore()}
}

// EnsureSchema returns the configured error.
func (m *SchemaStore) EnsureSchema(_ context.Context) error {
	m.EnsureSchemaCallCount++
	return m.EnsureErr
}
