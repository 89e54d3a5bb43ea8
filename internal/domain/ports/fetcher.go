// Package ports defines interfaces for external service communication.
package ports

import "context"

// ResourceFetcher retrieves a raw JSON resource by URL.
// Implementations return *entities.NetworkError or *entities.DecodeError.
type ResourceFetcher interface {
	// Fetch performs one GET for url and returns the JSON body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
