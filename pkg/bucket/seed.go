package bucket

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"soulsync.dev/soulsync/pkg/store"
)

const firstLaunchKey = "isFirstLaunch"

// Seeder writes the default bucket-list items on the first launch on a
// device. The flag is set once every write has been attempted, so a partial
// failure is not retried on later launches.
type Seeder struct {
	Flags store.FlagStore
	KV    store.KV

	// Path and Items default to DefaultPath and DefaultItems.
	Path  string
	Items []Seed
	Now   func() time.Time
}

// Do seeds the list if the first-launch flag is unset. It reports whether
// seeding ran.
func (s *Seeder) Do(ctx context.Context) (bool, error) {
	if s.Flags == nil || s.KV == nil {
		return false, errors.New("bucket: seeder requires a flag store and a kv store")
	}
	path := s.Path
	if path == "" {
		path = DefaultPath
	}
	items := s.Items
	if items == nil {
		items = DefaultItems
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	_, ok, err := s.Flags.GetItem(firstLaunchKey)
	if err != nil {
		return false, fmt.Errorf("bucket: read first-launch flag: %w", err)
	}
	if ok {
		return false, nil
	}

	// Independent concurrent writes; every item is attempted regardless of
	// the others' outcomes.
	errs := make([]error, len(items))
	var wg sync.WaitGroup
	for i, seed := range items {
		wg.Add(1)
		go func(i int, seed Seed) {
			defer wg.Done()
			key, err := s.KV.Push(path)
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = s.KV.Set(ctx, path+"/"+key, Item{
				Title:       seed.Title,
				Description: seed.Description,
				Completed:   false,
				DateAdded:   Timestamp{Time: now()},
			})
		}(i, seed)
	}
	wg.Wait()

	if err := s.Flags.SetItem(firstLaunchKey, "false"); err != nil {
		errs = append(errs, fmt.Errorf("bucket: set first-launch flag: %w", err))
	}
	return true, errors.Join(errs...)
}
