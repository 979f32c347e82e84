package media

import (
	"context"
	"errors"
	"math/rand"
	"sort"
)

// Fetcher hands the controller a fresh media sequence. The controller never
// keeps an authoritative copy; it refetches after every deletion.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Deleter removes a single asset by URI.
type Deleter interface {
	Delete(ctx context.Context, uri string) error
}

// Mode is the grid's interaction state.
type Mode int

const (
	Browsing Mode = iota
	Selecting
)

// TapAction tells the caller what a tap or long-press resolved to.
type TapAction int

const (
	TapNone TapAction = iota
	// TapOpen opens the full-screen viewer for the tapped item.
	TapOpen
	// TapToggled flipped the item's selection membership.
	TapToggled
	// TapConfirmDelete opens a single-item delete confirmation.
	TapConfirmDelete
)

// GridController owns the selection-mode state machine over a packed grid.
// It is single-goroutine by design, driven from a UI event loop.
type GridController struct {
	fetcher Fetcher
	deleter Deleter
	packer  *Packer
	rng     *rand.Rand

	limit    int
	mode     Mode
	selected map[string]bool
	rows     []Row
}

// NewGridController builds a controller in Browsing mode. limit caps how
// many items survive the shuffle before packing; 0 means no cap.
func NewGridController(fetcher Fetcher, deleter Deleter, rng *rand.Rand, limit int) *GridController {
	return &GridController{
		fetcher:  fetcher,
		deleter:  deleter,
		packer:   NewPacker(rng),
		rng:      rng,
		limit:    limit,
		selected: map[string]bool{},
	}
}

// Mode reports the current interaction state.
func (g *GridController) Mode() Mode { return g.mode }

// Rows returns the current packed rows.
func (g *GridController) Rows() []Row { return g.rows }

// SetLimit changes the display cap. Takes effect on the next Refresh.
func (g *GridController) SetLimit(n int) { g.limit = n }

// EnterSelection switches to Selecting and drops any stale selection.
func (g *GridController) EnterSelection() {
	g.mode = Selecting
	g.selected = map[string]bool{}
}

// ExitSelection returns to Browsing and clears the selection.
func (g *GridController) ExitSelection() {
	g.mode = Browsing
	g.selected = map[string]bool{}
}

// Tap resolves a tap on an item: toggle in Selecting, open in Browsing.
func (g *GridController) Tap(item Item) TapAction {
	if g.mode == Selecting {
		if g.selected[item.URI] {
			delete(g.selected, item.URI)
		} else {
			g.selected[item.URI] = true
		}
		return TapToggled
	}
	return TapOpen
}

// LongPress resolves a long-press: a single-item delete confirmation in
// Browsing, nothing in Selecting.
func (g *GridController) LongPress(item Item) TapAction {
	if g.mode == Browsing {
		return TapConfirmDelete
	}
	return TapNone
}

// IsSelected reports whether the uri is in the current selection.
func (g *GridController) IsSelected(uri string) bool { return g.selected[uri] }

// Selected returns the selected uris in a stable order.
func (g *GridController) Selected() []string {
	uris := make([]string, 0, len(g.selected))
	for uri := range g.selected {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

// Refresh fetches a fresh sequence, shuffles it, truncates to the cap, and
// re-packs the rows.
func (g *GridController) Refresh(ctx context.Context) error {
	items, err := g.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	Shuffle(items, g.rng)
	if g.limit > 0 && len(items) > g.limit {
		items = items[:g.limit]
	}
	g.rows = g.packer.Pack(items)
	return nil
}

// DeleteItem deletes one asset and refetches. The confirmation step happens
// before this is called.
func (g *GridController) DeleteItem(ctx context.Context, uri string) error {
	if err := g.deleter.Delete(ctx, uri); err != nil {
		return err
	}
	return g.Refresh(ctx)
}

// DeleteSelected deletes every selected asset. Each deletion is independent;
// failures are aggregated after all have been attempted. Selection mode ends
// whether or not anything failed, and the grid refetches either way.
func (g *GridController) DeleteSelected(ctx context.Context) error {
	errs := make([]error, 0, len(g.selected))
	for _, uri := range g.Selected() {
		if err := g.deleter.Delete(ctx, uri); err != nil {
			errs = append(errs, err)
		}
	}
	g.ExitSelection()
	if err := g.Refresh(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
