package pokeapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// Retrying wraps a fetcher with bounded exponential backoff. Only retryable
// NetworkErrors are repeated; decode failures and client errors return at once.
type Retrying struct {
	next            ports.ResourceFetcher
	retries         uint
	initialInterval time.Duration
	maxInterval     time.Duration
}

// RetryOption configures a Retrying fetcher.
type RetryOption func(*Retrying)

// WithIntervals sets the first and the largest wait between attempts.
func WithIntervals(initial, ceiling time.Duration) RetryOption {
	return func(r *Retrying) {
		r.initialInterval = initial
		r.maxInterval = ceiling
	}
}

// NewRetrying creates a fetcher that makes at most retries extra attempts.
func NewRetrying(next ports.ResourceFetcher, retries int, opts ...RetryOption) *Retrying {
	if retries < 0 {
		retries = 0
	}
	r := &Retrying{
		next:            next,
		retries:         uint(retries),
		initialInterval: 500 * time.Millisecond,
		maxInterval:     10 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch delegates to the wrapped fetcher, retrying transient failures.
func (r *Retrying) Fetch(ctx context.Context, url string) ([]byte, error) {
	if r.retries == 0 {
		return r.next.Fetch(ctx, url)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval

	attempt := 0
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		attempt++
		body, err := r.next.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		var netErr *entities.NetworkError
		if !errors.As(err, &netErr) || !netErr.Retryable() {
			return nil, backoff.Permanent(err)
		}
		slog.Debug("retrying fetch", "url", url, "attempt", attempt, "err", err)
		return nil, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(r.retries+1),
	)
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return nil, perm.Err
		}
		return nil, err
	}
	return body, nil
}
