package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"soulsync.dev/soulsync/pkg/store"
)

// DefaultPath is the remote path settings live under.
const DefaultPath = "settings"

// Store mirrors the remote settings object. One instance is constructed at
// startup and injected everywhere; consumers either read Current or
// register for change notifications. Zen mode is process-local and never
// written remotely.
type Store struct {
	kv   store.KV
	path string

	mu      sync.RWMutex
	current Settings
	zen     bool
	subs    []func(Settings)
}

// NewStore creates a store primed with the defaults.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, path: DefaultPath, current: Defaults()}
}

// Subscribe registers a callback invoked after every applied change.
// Register before Run.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Run holds the remote subscription open until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	ch, err := s.kv.Subscribe(ctx, s.path)
	if err != nil {
		return err
	}
	for snap := range ch {
		s.Apply(ctx, snap)
	}
	return nil
}

// Sync applies a single snapshot and returns.
func (s *Store) Sync(ctx context.Context) error {
	sub, cancel := context.WithCancel(ctx)
	defer cancel()
	ch, err := s.kv.Subscribe(sub, s.path)
	if err != nil {
		return err
	}
	select {
	case snap := <-ch:
		s.Apply(ctx, snap)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Apply projects a snapshot onto the defaults. An empty snapshot means the
// remote object has never been written; seed it with the defaults and let
// the resulting snapshot confirm them.
func (s *Store) Apply(ctx context.Context, snap store.Snapshot) {
	if len(snap) == 0 {
		if err := s.kv.Set(ctx, s.path, Defaults()); err != nil {
			fmt.Fprintf(os.Stderr, "settings: write defaults: %s\n", err)
		}
		s.set(Defaults())
		return
	}
	cfg := Defaults()
	data, err := json.Marshal(map[string]json.RawMessage(snap))
	if err == nil {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s\n", err)
		return
	}
	s.set(cfg)
}

// Update writes the full settings object and takes it locally right away
// rather than waiting for the echo snapshot.
func (s *Store) Update(ctx context.Context, cfg Settings) error {
	if err := s.kv.Set(ctx, s.path, cfg); err != nil {
		return fmt.Errorf("settings: update: %w", err)
	}
	s.set(cfg)
	return nil
}

// Current returns the mirrored settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Zen reports whether zen mode is on.
func (s *Store) Zen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zen
}

// SetZen flips the process-local zen flag and notifies subscribers.
func (s *Store) SetZen(on bool) {
	s.mu.Lock()
	s.zen = on
	cfg := s.current
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(cfg)
	}
}

func (s *Store) set(cfg Settings) {
	s.mu.Lock()
	s.current = cfg
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(cfg)
	}
}
