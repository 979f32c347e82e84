package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Subscribe streams snapshots of path until ctx is cancelled. The current
// snapshot is delivered immediately; afterwards every committed change under
// path produces a fresh one. Delivery is latest-wins: if the consumer lags,
// a stale snapshot is replaced rather than queued, which is safe because each
// snapshot is a full replacement of the previous. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *kv) Subscribe(ctx context.Context, path string) (<-chan Snapshot, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: subscribe path required")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	snapshots := make(chan Snapshot, 1)

	go func() {
		defer close(snapshots)
		defer closeWatcher()

		// Track directories we already watch so we can add new ones at runtime
		// without duplicating watches.
		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(snap Snapshot) {
			select {
			case snapshots <- snap:
				return
			default:
			}
			// Displace the stale snapshot the consumer has not taken yet.
			select {
			case <-snapshots:
			default:
			}
			select {
			case snapshots <- snap:
			default:
			}
		}

		refresh := func() { send(p.snapshot(ctx, path)) }
		refresh()

		throttle := newSnapshotThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep clients in
				// sync even if we cannot classify the change precisely.
				throttle.Bump(refresh)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// If a new directory appears, start watching it to capture
					// subsequent file writes.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Bump(refresh)
						continue
					}
				}

				if !p.withinPath(evt.Name, path) {
					continue
				}
				throttle.Bump(refresh)
			}
		}
	}()

	return snapshots, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// withinPath reports whether the changed file belongs to the subscribed path.
func (p *kv) withinPath(file, path string) bool {
	rel, err := filepath.Rel(p.basePath, file)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	return rel == path || strings.HasPrefix(rel, path+"/")
}

// snapshotThrottle coalesces rapid change notifications so subscribers see one
// snapshot per burst of filesystem activity instead of one per write.
type snapshotThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newSnapshotThrottle(delay time.Duration) *snapshotThrottle {
	return &snapshotThrottle{delay: delay}
}

func (t *snapshotThrottle) Bump(fn func()) {
	t.mu.Lock()
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.mu.Lock()
			t.timer = nil
			t.mu.Unlock()
			fn()
		})
	}
	t.mu.Unlock()
}

func (t *snapshotThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
