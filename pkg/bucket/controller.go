package bucket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"soulsync.dev/soulsync/pkg/store"
)

// DefaultPath is the remote path the bucket list lives under.
const DefaultPath = "bucketList"

// ErrTitleRequired is returned before any remote write when a title is empty.
var ErrTitleRequired = errors.New("bucket: title is required")

// Controller mirrors the remote bucket list. The local cache is populated
// exclusively by the subscription stream: every mutation issues a remote
// write and relies on the resulting snapshot to become visible locally, so
// "write succeeded" and "cache updated" are independent events.
type Controller struct {
	kv   store.KV
	path string
	now  func() time.Time

	mu       sync.RWMutex
	items    []Item
	onChange func([]Item)
}

// NewController creates a controller over the default bucket-list path.
func NewController(kv store.KV) *Controller {
	return &Controller{kv: kv, path: DefaultPath, now: time.Now}
}

// OnChange registers a callback invoked with a copy of the cache after every
// applied snapshot. Register before Run.
func (c *Controller) OnChange(fn func([]Item)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Run holds the subscription open for the controller's lifetime, applying
// every delivered snapshot until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	ch, err := c.kv.Subscribe(ctx, c.path)
	if err != nil {
		return err
	}
	for snap := range ch {
		c.Apply(snap)
	}
	return nil
}

// Sync applies a single snapshot and returns. One-shot commands use this to
// read the current list without holding a subscription open.
func (c *Controller) Sync(ctx context.Context) error {
	sub, cancel := context.WithCancel(ctx)
	defer cancel()
	ch, err := c.kv.Subscribe(sub, c.path)
	if err != nil {
		return err
	}
	select {
	case snap := <-ch:
		c.Apply(snap)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Apply replaces the whole cache with a projection of the snapshot. Missing
// description and completed fields take their zero values; a missing
// dateAdded falls back to the current time (display only, never written).
func (c *Controller) Apply(snap store.Snapshot) {
	items := make([]Item, 0, len(snap))
	for key, raw := range snap {
		item := Item{ID: key}
		if err := json.Unmarshal(raw, &item); err != nil {
			fmt.Fprintf(os.Stderr, "bucket: %s: %s\n", key, err)
			continue
		}
		if item.DateAdded.IsZero() {
			item.DateAdded = Timestamp{Time: c.now()}
		}
		items = append(items, item)
	}
	sortItems(items)

	c.mu.Lock()
	c.items = items
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(c.Items())
	}
}

// Items returns a copy of the cached list.
func (c *Controller) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Item looks up a cached item by id.
func (c *Controller) Item(id string) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// AddItem creates a new item with a store-assigned id.
func (c *Controller) AddItem(ctx context.Context, title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	key, err := c.kv.Push(c.path)
	if err != nil {
		return fmt.Errorf("bucket: add: %w", err)
	}
	value := Item{
		Title:       title,
		Description: description,
		Completed:   false,
		DateAdded:   Timestamp{Time: c.now()},
	}
	if err := c.kv.Set(ctx, c.path+"/"+key, value); err != nil {
		return fmt.Errorf("bucket: add: %w", err)
	}
	return nil
}

// EditItem updates exactly title and description; completed and dateAdded
// are untouched.
func (c *Controller) EditItem(ctx context.Context, id, title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	err := c.kv.Update(ctx, c.path+"/"+id, map[string]any{
		"title":       title,
		"description": description,
	})
	if err != nil {
		return fmt.Errorf("bucket: edit %s: %w", id, err)
	}
	return nil
}

// DeleteItem removes the item. Irreversible; callers gate this behind an
// explicit confirmation.
func (c *Controller) DeleteItem(ctx context.Context, id string) error {
	if err := c.kv.Remove(ctx, c.path+"/"+id); err != nil {
		return fmt.Errorf("bucket: delete %s: %w", id, err)
	}
	return nil
}

// ToggleCompletion flips completed based on the caller's last-known value.
// Two clients toggling concurrently can both read the same value and write
// the same negation; the store's last write wins.
func (c *Controller) ToggleCompletion(ctx context.Context, item Item) error {
	err := c.kv.Update(ctx, c.path+"/"+item.ID, map[string]any{
		"completed": !item.Completed,
	})
	if err != nil {
		return fmt.Errorf("bucket: toggle %s: %w", item.ID, err)
	}
	return nil
}

// AddSampleItems creates every sample item. Each write is independent; the
// outcomes are aggregated rather than aborting on the first failure.
func (c *Controller) AddSampleItems(ctx context.Context) error {
	var errs []error
	for _, seed := range SampleItems {
		if err := c.AddItem(ctx, seed.Title, seed.Description); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		lt := items[i].DateAdded.Time
		rt := items[j].DateAdded.Time
		if lt.Equal(rt) {
			return items[i].ID < items[j].ID
		}
		return lt.Before(rt)
	})
}
