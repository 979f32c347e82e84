// Package tui hosts the Bubble Tea program for the soulsync terminal UI.
package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"soulsync.dev/soulsync/pkg/blob"
	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/media"
	"soulsync.dev/soulsync/pkg/settings"
	"soulsync.dev/soulsync/pkg/sky"
	"soulsync.dev/soulsync/pkg/store"
)

type tab int

const (
	tabBucket tab = iota
	tabGallery
	tabSettings
)

type mode int

const (
	modeNormal mode = iota
	modeInsertTitle
	modeInsertDescription
	modeConfirm
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteItem
	confirmDeleteMedia
	confirmDeleteSelected
)

// Model is the root Bubble Tea model: bucket, gallery, and settings tabs
// over the shared controllers.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	kv       store.KV
	bucket   *bucket.Controller
	grid     *media.GridController
	library  *blob.Library
	settings *settings.Store

	tab  tab
	mode mode

	items      []bucket.Item
	cursor     int
	mediaIndex int

	input       textinput.Model
	editingID   string
	insertTitle string

	confirm   confirmAction
	confirmID string

	bucketCh   <-chan store.Snapshot
	settingsCh <-chan store.Snapshot

	now func() time.Time
	rng *rand.Rand

	status     string
	termWidth  int
	termHeight int
}

// New wires the model over an open store and media library.
func New(kv store.KV, library *blob.Library) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	s := settings.NewStore(kv)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	m := &Model{
		ctx:        ctx,
		cancel:     cancel,
		kv:         kv,
		bucket:     bucket.NewController(kv),
		library:    library,
		settings:   s,
		input:      ti,
		now:        time.Now,
		rng:        rng,
		termWidth:  80,
		termHeight: 24,
	}
	if library != nil {
		m.grid = media.NewGridController(library, library, rng, s.Current().NumberOfMediaItems)
	}
	return m
}

// Init subscribes to the remote paths and loads the gallery.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		startWatchCmd(m.ctx, m.kv, bucket.DefaultPath, bucketWatch),
		startWatchCmd(m.ctx, m.kv, settings.DefaultPath, settingsWatch),
		m.refreshGallery(),
	)
}

// Run starts the program in the alternate screen.
func Run(kv store.KV, library *blob.Library) error {
	p := tea.NewProgram(New(kv, library), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) gradient() (string, string) {
	if !m.settings.Current().UseDynamicBackground {
		return "#0B0C10", "#1F2833"
	}
	return sky.GradientColors(m.now(), sky.DefaultLatitude, sky.DefaultLongitude)
}

func (m *Model) visibleItems() []bucket.Item {
	return m.items
}

func (m *Model) currentItem() (bucket.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return bucket.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) mediaItems() []media.Item {
	if m.grid == nil {
		return nil
	}
	return media.Flatten(m.grid.Rows())
}

func (m *Model) currentMedia() (media.Item, bool) {
	items := m.mediaItems()
	if m.mediaIndex < 0 || m.mediaIndex >= len(items) {
		return media.Item{}, false
	}
	return items[m.mediaIndex], true
}
