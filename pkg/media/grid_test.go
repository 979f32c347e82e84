package media

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

type fakeLibrary struct {
	items   []Item
	fetches int
	deleted []string
	failing map[string]error
}

func (f *fakeLibrary) Fetch(ctx context.Context) ([]Item, error) {
	f.fetches++
	items := make([]Item, len(f.items))
	copy(items, f.items)
	return items, nil
}

func (f *fakeLibrary) Delete(ctx context.Context, uri string) error {
	if err := f.failing[uri]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, uri)
	kept := f.items[:0]
	for _, item := range f.items {
		if item.URI != uri {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func newGrid(lib *fakeLibrary, limit int) *GridController {
	return NewGridController(lib, lib, rand.New(rand.NewSource(7)), limit)
}

func TestSelectionToggleIdempotent(t *testing.T) {
	g := newGrid(&fakeLibrary{}, 0)
	g.EnterSelection()
	item := Item{URI: "a"}

	if got := g.Tap(item); got != TapToggled {
		t.Fatalf("expected toggle, got %v", got)
	}
	if !g.IsSelected("a") {
		t.Fatal("expected a selected after one tap")
	}
	g.Tap(item)
	if g.IsSelected("a") {
		t.Fatal("expected a deselected after two taps")
	}
}

func TestBrowsingTapOpensViewer(t *testing.T) {
	g := newGrid(&fakeLibrary{}, 0)
	if got := g.Tap(Item{URI: "a"}); got != TapOpen {
		t.Fatalf("expected open, got %v", got)
	}
	if got := g.LongPress(Item{URI: "a"}); got != TapConfirmDelete {
		t.Fatalf("expected delete confirmation, got %v", got)
	}
	g.EnterSelection()
	if got := g.LongPress(Item{URI: "a"}); got != TapNone {
		t.Fatalf("expected no-op long-press while selecting, got %v", got)
	}
}

func TestModeExitClearsSelection(t *testing.T) {
	g := newGrid(&fakeLibrary{}, 0)
	g.EnterSelection()
	g.Tap(Item{URI: "a"})
	g.Tap(Item{URI: "b"})
	g.ExitSelection()
	if g.Mode() != Browsing || len(g.Selected()) != 0 {
		t.Fatalf("expected empty selection in browsing mode, got %v", g.Selected())
	}

	g.EnterSelection()
	if len(g.Selected()) != 0 {
		t.Fatal("entering selection mode must start from an empty set")
	}
}

func TestDeleteSelectedAttemptsAllAndRefetches(t *testing.T) {
	boom := errors.New("storage unavailable")
	lib := &fakeLibrary{
		items:   sequence(5),
		failing: map[string]error{"m-1": boom},
	}
	g := newGrid(lib, 0)
	g.EnterSelection()
	g.Tap(Item{URI: "m-0"})
	g.Tap(Item{URI: "m-1"})
	g.Tap(Item{URI: "m-2"})

	err := g.DeleteSelected(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected aggregated failure, got %v", err)
	}
	if len(lib.deleted) != 2 {
		t.Fatalf("expected the other deletions attempted, got %v", lib.deleted)
	}
	if g.Mode() != Browsing || len(g.Selected()) != 0 {
		t.Fatal("failure must still end selection mode and clear the set")
	}
	if lib.fetches != 1 {
		t.Fatalf("expected a refetch after bulk delete, got %d", lib.fetches)
	}
	if len(Flatten(g.Rows())) != 3 {
		t.Fatalf("expected repacked grid of 3, got %d", len(Flatten(g.Rows())))
	}
}

func TestDeleteItemRefetches(t *testing.T) {
	lib := &fakeLibrary{items: sequence(3)}
	g := newGrid(lib, 0)
	if err := g.DeleteItem(context.Background(), "m-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if lib.fetches != 1 || len(Flatten(g.Rows())) != 2 {
		t.Fatalf("expected refetched grid of 2, got %d rows items", len(Flatten(g.Rows())))
	}
}

func TestRefreshTruncatesToLimit(t *testing.T) {
	lib := &fakeLibrary{items: sequence(25)}
	g := newGrid(lib, 10)
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if n := len(Flatten(g.Rows())); n != 10 {
		t.Fatalf("expected 10 displayed items, got %d", n)
	}

	g.SetLimit(0)
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if n := len(Flatten(g.Rows())); n != 25 {
		t.Fatalf("expected no cap, got %d", n)
	}
}
