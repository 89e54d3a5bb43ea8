package ports

import "context"

// SchemaManager is implemented by stores that need their storage prepared
// before first use. It is separate from ModeStore because the document
// store needs no setup.
type SchemaManager interface {
	// EnsureSchema creates the storage layout if it doesn't exist.
	EnsureSchema(ctx context.Context) error
}
