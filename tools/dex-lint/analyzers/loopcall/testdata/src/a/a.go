package a

import "context"

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type ModeStore interface {
	Load(ctx context.Context) (map[int]string, error)
	Save(ctx context.Context, modes map[int]string) error
}

func bad(ctx context.Context, urls []string, f Fetcher, store ModeStore) {
	for _, u := range urls {
		f.Fetch(ctx, u)   // want "Fetch called inside loop - use the typed PokeAPI accessors"
		store.Load(ctx)   // want "Load called inside loop"
		store.Save(ctx, nil) // want "Save called inside loop"
	}
}

func good(ctx context.Context, ids []int, store ModeStore) error {
	modes, err := store.Load(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		modes[id] = "boxed"
	}
	return store.Save(ctx, modes)
}

func closures(ctx context.Context, urls []string, f Fetcher) {
	for _, u := range urls {
		go func() {
			f.Fetch(ctx, u)
		}()
	}
}
