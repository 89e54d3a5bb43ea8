// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// Fetcher is a mock implementation of ports.ResourceFetcher that serves
// canned bodies and counts calls per URL.
type Fetcher struct {
	mu     sync.Mutex
	Bodies map[string][]byte
	Errs   map[string]error
	calls  map[string]int
}

// NewFetcher creates a new mock Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Bodies: make(map[string][]byte),
		Errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

// Fetch returns the canned body for url, or a 404 NetworkError when none is set.
func (m *Fetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[url]++
	if err, ok := m.Errs[url]; ok {
		return nil, err
	}
	body, ok := m.Bodies[url]
	if !ok {
		return nil, &entities.NetworkError{URL: url, StatusCode: 404}
	}
	return body, nil
}

// Calls returns how many times url was fetched.
func (m *Fetcher) Calls(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[url]
}

// TotalCalls returns the number of fetches across all URLs.
func (m *Fetcher) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}
