package store

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func loadTestKV(t *testing.T) KV {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load kv: %v", err)
	}
	return p
}

func TestSetAndSubscribeDeliversInitialSnapshot(t *testing.T) {
	p := loadTestKV(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.Set(ctx, "bucketList/abc", map[string]any{"title": "Trip"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	ch, err := p.Subscribe(ctx, "bucketList")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	select {
	case snap := <-ch:
		raw, ok := snap["abc"]
		if !ok {
			t.Fatalf("expected child 'abc' in snapshot, got %v", snap)
		}
		var obj map[string]string
		if err := json.Unmarshal(raw, &obj); err != nil {
			t.Fatalf("unmarshal child: %v", err)
		}
		if obj["title"] != "Trip" {
			t.Fatalf("expected title 'Trip', got %q", obj["title"])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}
}

func TestSubscribeObservesWrites(t *testing.T) {
	p := loadTestKV(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Subscribe(ctx, "bucketList")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	// Initial snapshot of an empty path is nil.
	select {
	case snap := <-ch:
		if snap != nil {
			t.Fatalf("expected nil initial snapshot, got %v", snap)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	if err := p.Set(ctx, "bucketList/k1", map[string]any{"title": "Japan"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case snap := <-ch:
			if _, ok := snap["k1"]; ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot containing k1")
		}
	}
}

func TestUpdateMergesFields(t *testing.T) {
	p := loadTestKV(t)
	ctx := context.Background()

	if err := p.Set(ctx, "bucketList/x", map[string]any{
		"title":     "Guitar",
		"completed": false,
		"dateAdded": "2026-01-02T15:04:05Z",
	}); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := p.Update(ctx, "bucketList/x", map[string]any{"completed": true}); err != nil {
		t.Fatalf("update: %v", err)
	}

	snap := p.(*kv).snapshot(ctx, "bucketList")
	var obj struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
		DateAdded string `json:"dateAdded"`
	}
	if err := json.Unmarshal(snap["x"], &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !obj.Completed {
		t.Fatal("expected completed to be merged to true")
	}
	if obj.Title != "Guitar" || obj.DateAdded != "2026-01-02T15:04:05Z" {
		t.Fatalf("expected untouched fields to survive merge, got %+v", obj)
	}
}

func TestRemoveDeletesChild(t *testing.T) {
	p := loadTestKV(t)
	ctx := context.Background()

	if err := p.Set(ctx, "bucketList/gone", map[string]any{"title": "x"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.Remove(ctx, "bucketList/gone"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if snap := p.(*kv).snapshot(ctx, "bucketList"); snap != nil {
		t.Fatalf("expected empty snapshot after remove, got %v", snap)
	}

	// Removing an absent path is not an error.
	if err := p.Remove(ctx, "bucketList/never"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestLeafObjectFieldsAreChildren(t *testing.T) {
	p := loadTestKV(t)
	ctx := context.Background()

	if err := p.Set(ctx, "settings", map[string]any{"numberOfStars": 100}); err != nil {
		t.Fatalf("set: %v", err)
	}
	snap := p.(*kv).snapshot(ctx, "settings")
	if _, ok := snap["numberOfStars"]; !ok {
		t.Fatalf("expected object fields as snapshot children, got %v", snap)
	}
}

func TestPushKeysAreUnique(t *testing.T) {
	p := loadTestKV(t)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key, err := p.Push("bucketList")
		if err != nil {
			t.Fatalf("push: %v", err)
		}
		if _, err := uuid.Parse(key); err != nil {
			t.Fatalf("push key %q is not a uuid: %v", key, err)
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate push key %q", key)
		}
		seen[key] = struct{}{}
	}
}

func TestSnapshotThrottleCoalescesBursts(t *testing.T) {
	throttle := newSnapshotThrottle(30 * time.Millisecond)
	defer throttle.Stop()

	var fired int32
	bump := func() { atomic.AddInt32(&fired, 1) }

	for i := 0; i < 10; i++ {
		throttle.Bump(bump)
	}
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expected one refresh for a burst of bumps, got %d", got)
	}

	// A later bump starts a new window.
	throttle.Bump(bump)
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Fatalf("expected a second refresh after the burst settled, got %d", got)
	}
}

func TestSnapshotThrottleStopDropsPending(t *testing.T) {
	throttle := newSnapshotThrottle(50 * time.Millisecond)

	var fired int32
	throttle.Bump(func() { atomic.AddInt32(&fired, 1) })
	throttle.Stop()

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("expected no refresh after stop, got %d", got)
	}
}

func TestFlagStoreRoundTrip(t *testing.T) {
	flags, err := LoadFlags(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load flags: %v", err)
	}

	if _, ok, err := flags.GetItem("isFirstLaunch"); err != nil || ok {
		t.Fatalf("expected absent flag, got ok=%v err=%v", ok, err)
	}
	if err := flags.SetItem("isFirstLaunch", "false"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	val, ok, err := flags.GetItem("isFirstLaunch")
	if err != nil || !ok || val != "false" {
		t.Fatalf("expected stored flag 'false', got val=%q ok=%v err=%v", val, ok, err)
	}
}
