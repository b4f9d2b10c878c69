package docstore

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// FetchOptions tunes FetchAll.
type FetchOptions struct {
	// Parallelism bounds concurrent fetches. Values below 1 mean 4.
	Parallelism int
	// Limiter, when set, paces fetches; useful against remote stores.
	Limiter *rate.Limiter
}

// FetchAll resolves several documents concurrently and returns them keyed by
// name. The first failure cancels the remaining fetches.
func FetchAll(ctx context.Context, store Store, names []string, optFns ...func(*FetchOptions)) (map[string][]byte, error) {
	o := FetchOptions{Parallelism: 4}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Parallelism < 1 {
		o.Parallelism = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)

	var mu sync.Mutex
	out := make(map[string][]byte, len(names))

	for _, name := range names {
		name := name
		g.Go(func() error {
			if o.Limiter != nil {
				if err := o.Limiter.Wait(ctx); err != nil {
					return err
				}
			}

			data, err := store.Fetch(ctx, name)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", name, err)
			}

			mu.Lock()
			out[name] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
