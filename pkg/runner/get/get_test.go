package get

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/store"
)

type fakeKV struct {
	snap store.Snapshot
}

func (f *fakeKV) Subscribe(ctx context.Context, path string) (<-chan store.Snapshot, error) {
	ch := make(chan store.Snapshot, 1)
	ch <- f.snap
	close(ch)
	return ch, nil
}

func (f *fakeKV) Push(path string) (string, error) { return "k1", nil }

func (f *fakeKV) Set(ctx context.Context, path string, value any) error { return nil }

func (f *fakeKV) Update(ctx context.Context, path string, fields map[string]any) error {
	return nil
}

func (f *fakeKV) Remove(ctx context.Context, path string) error { return nil }

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	if err := fn(); err != nil {
		t.Fatalf("do: %v", err)
	}
	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(out)
}

func TestDoJSONPrintsItems(t *testing.T) {
	kv := &fakeKV{snap: store.Snapshot{
		"a": json.RawMessage(`{"title":"Travel to Japan","completed":false,"dateAdded":"2026-01-02T15:04:05Z"}`),
		"b": json.RawMessage(`{"title":"Run a Marathon","completed":true,"dateAdded":"2026-02-03T15:04:05Z"}`),
	}}

	s := Get{Output: "json", KV: kv}
	out := captureStdout(t, func() error { return s.Do(context.Background()) })

	var items []bucket.Item
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &items); err != nil {
		t.Fatalf("output is not a JSON list: %v\nout=%q", err, out)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Travel to Japan" || items[1].Title != "Run a Marathon" {
		t.Fatalf("expected dateAdded ordering, got %+v", items)
	}
}

func TestDoJSONFiltersCompleted(t *testing.T) {
	kv := &fakeKV{snap: store.Snapshot{
		"a": json.RawMessage(`{"title":"Travel to Japan","completed":false,"dateAdded":"2026-01-02T15:04:05Z"}`),
		"b": json.RawMessage(`{"title":"Run a Marathon","completed":true,"dateAdded":"2026-02-03T15:04:05Z"}`),
	}}

	s := Get{Output: "json", Completed: true, KV: kv}
	out := captureStdout(t, func() error { return s.Do(context.Background()) })

	var items []bucket.Item
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &items); err != nil {
		t.Fatalf("output is not a JSON list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Run a Marathon" {
		t.Fatalf("expected only the completed item, got %+v", items)
	}
}

func TestDoWithoutStoreErrors(t *testing.T) {
	s := Get{}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected an error without a store")
	}
}

func TestFiltered(t *testing.T) {
	all := []bucket.Item{
		{ID: "a", Title: "pending one"},
		{ID: "b", Title: "done one", Completed: true},
	}

	both := (&Get{}).filtered(all)
	if len(both) != 2 {
		t.Fatalf("no filter must keep everything, got %d", len(both))
	}
	pending := (&Get{Pending: true}).filtered(all)
	if len(pending) != 1 || pending[0].ID != "a" {
		t.Fatalf("expected only pending, got %+v", pending)
	}
	completed := (&Get{Completed: true}).filtered(all)
	if len(completed) != 1 || completed[0].ID != "b" {
		t.Fatalf("expected only completed, got %+v", completed)
	}
}
