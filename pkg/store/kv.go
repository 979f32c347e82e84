package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

// Snapshot is the full mapping of child key to raw JSON value at a subscribed
// path. A nil snapshot means the path currently holds nothing.
type Snapshot map[string]json.RawMessage

// KV defines the remote key-value store contract. Paths are slash-separated,
// e.g. "bucketList" or "bucketList/<id>". Writes are visible to subscribers
// through full-path snapshots; a write's own return does not imply its
// snapshot has been delivered yet.
type KV interface {
	// Subscribe delivers the current snapshot immediately and a fresh snapshot
	// after every committed change under path, until ctx is done.
	Subscribe(ctx context.Context, path string) (<-chan Snapshot, error)
	// Push reserves a new store-assigned child key under path.
	Push(path string) (string, error)
	// Set overwrites the value at path.
	Set(ctx context.Context, path string, value any) error
	// Update merges the given fields into the object at path, leaving other
	// fields untouched.
	Update(ctx context.Context, path string, fields map[string]any) error
	// Remove deletes path and everything beneath it. Removing an absent path
	// is not an error.
	Remove(ctx context.Context, path string) error
}

// Load creates a KV backed by diskv using the provided config.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &kv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: pathTransform,
		InverseTransform:  inversePathTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type kv struct {
	d        *diskv.Diskv
	basePath string
}

func (p *kv) Push(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("store: push path required")
	}
	// UUIDv7 keys carry a timestamp prefix, so store-assigned children sort
	// roughly in creation order like hosted push keys do.
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("store: push %s: %w", path, err)
	}
	return id.String(), nil
}

func (p *kv) Set(ctx context.Context, path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: set %s: %w", path, err)
	}
	if err := p.d.Write(path, data); err != nil {
		return fmt.Errorf("store: set %s: %w", path, err)
	}
	return nil
}

func (p *kv) Update(ctx context.Context, path string, fields map[string]any) error {
	current := make(map[string]json.RawMessage)
	if val, err := p.d.Read(path); err == nil {
		if err := json.Unmarshal(val, &current); err != nil {
			return fmt.Errorf("store: update %s: %w", path, err)
		}
	}
	for k, v := range fields {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("store: update %s: %w", path, err)
		}
		current[k] = data
	}
	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("store: update %s: %w", path, err)
	}
	if err := p.d.Write(path, data); err != nil {
		return fmt.Errorf("store: update %s: %w", path, err)
	}
	return nil
}

func (p *kv) Remove(ctx context.Context, path string) error {
	prefix := path + "/"
	for key := range p.d.Keys(ctx.Done()) {
		if key != path && !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: remove %s: %w", key, err)
		}
	}
	return nil
}

// snapshot reads the current children of path. A direct child key holds the
// child's whole object; a leaf object stored at path itself contributes its
// fields as children, matching how a hosted realtime store treats object
// fields as child nodes.
func (p *kv) snapshot(ctx context.Context, path string) Snapshot {
	snap := make(Snapshot)
	prefix := path + "/"
	for key := range p.d.Keys(ctx.Done()) {
		switch {
		case key == path:
			val, err := p.d.Read(key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
				continue
			}
			fields := make(map[string]json.RawMessage)
			if err := json.Unmarshal(val, &fields); err != nil {
				fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
				continue
			}
			for k, v := range fields {
				snap[k] = v
			}
		case strings.HasPrefix(key, prefix):
			child := strings.TrimPrefix(key, prefix)
			if strings.Contains(child, "/") {
				// only direct children carry whole objects in this store
				continue
			}
			val, err := p.d.Read(key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
				continue
			}
			snap[child] = json.RawMessage(val)
		}
	}
	if len(snap) == 0 {
		return nil
	}
	return snap
}

func pathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func inversePathTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
