package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut calls fn for every index in [0, n) with at most limit calls in
// flight. fn records its own per-item failures; fanOut only returns the
// context error when the batch was cancelled.
func fanOut(ctx context.Context, n, limit int, fn func(ctx context.Context, i int)) error {
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(gctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
