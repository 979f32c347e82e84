package settings

import (
	"context"
	"encoding/json"
	"testing"

	"soulsync.dev/soulsync/pkg/store"
)

type fakeKV struct {
	sets      []any
	snapshots chan store.Snapshot
}

func newFakeKV() *fakeKV {
	return &fakeKV{snapshots: make(chan store.Snapshot, 4)}
}

func (f *fakeKV) Subscribe(ctx context.Context, path string) (<-chan store.Snapshot, error) {
	return f.snapshots, nil
}

func (f *fakeKV) Push(path string) (string, error) { return "", nil }

func (f *fakeKV) Set(ctx context.Context, path string, value any) error {
	f.sets = append(f.sets, value)
	return nil
}

func (f *fakeKV) Update(ctx context.Context, path string, fields map[string]any) error {
	return nil
}

func (f *fakeKV) Remove(ctx context.Context, path string) error { return nil }

func TestEmptySnapshotSeedsDefaults(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv)

	s.Apply(context.Background(), nil)

	if len(kv.sets) != 1 {
		t.Fatalf("expected one defaults write, got %d", len(kv.sets))
	}
	if got := kv.sets[0].(Settings); got != Defaults() {
		t.Fatalf("expected defaults written, got %+v", got)
	}
	if s.Current() != Defaults() {
		t.Fatalf("expected defaults current, got %+v", s.Current())
	}
}

func TestPartialSnapshotKeepsDefaults(t *testing.T) {
	s := NewStore(newFakeKV())
	s.Apply(context.Background(), store.Snapshot{
		"numberOfMediaItems": json.RawMessage(`25`),
	})

	got := s.Current()
	if got.NumberOfMediaItems != 25 {
		t.Fatalf("expected cap 25, got %d", got.NumberOfMediaItems)
	}
	if got.NumberOfStars != 100 || got.LongPressDuration != 1000 || !got.UseDynamicBackground {
		t.Fatalf("missing fields must keep defaults, got %+v", got)
	}
}

func TestUpdateWritesAndAppliesImmediately(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv)

	cfg := Defaults()
	cfg.NumberOfStars = 250
	if err := s.Update(context.Background(), cfg); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(kv.sets) != 1 {
		t.Fatalf("expected one remote write, got %d", len(kv.sets))
	}
	if s.Current().NumberOfStars != 250 {
		t.Fatalf("expected local mirror updated, got %+v", s.Current())
	}
}

func TestSubscribersNotified(t *testing.T) {
	s := NewStore(newFakeKV())
	var seen []Settings
	s.Subscribe(func(cfg Settings) { seen = append(seen, cfg) })

	s.Apply(context.Background(), store.Snapshot{
		"numberOfStars": json.RawMessage(`42`),
	})
	if len(seen) != 1 || seen[0].NumberOfStars != 42 {
		t.Fatalf("expected one notification with stars=42, got %+v", seen)
	}
}

func TestZenIsProcessLocal(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv)

	s.SetZen(true)
	if !s.Zen() {
		t.Fatal("expected zen on")
	}
	s.SetZen(false)
	if s.Zen() {
		t.Fatal("expected zen off")
	}
	if len(kv.sets) != 0 {
		t.Fatalf("zen mode must never write remotely, got %d writes", len(kv.sets))
	}
}
