package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"soulsync.dev/soulsync/pkg/store"
)

type watchTarget int

const (
	bucketWatch watchTarget = iota
	settingsWatch
)

type watchStartedMsg struct {
	target watchTarget
	ch     <-chan store.Snapshot
	err    error
}

type snapshotMsg struct {
	target watchTarget
	snap   store.Snapshot
}

type watchStoppedMsg struct {
	target watchTarget
}

type galleryRefreshedMsg struct {
	err error
}

type opDoneMsg struct {
	err error
}

func startWatchCmd(ctx context.Context, kv store.KV, path string, target watchTarget) tea.Cmd {
	if kv == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := kv.Subscribe(ctx, path)
		return watchStartedMsg{target: target, ch: ch, err: err}
	}
}

func waitForSnapshot(target watchTarget, ch <-chan store.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if snap, ok := <-ch; ok {
			return snapshotMsg{target: target, snap: snap}
		}
		return watchStoppedMsg{target: target}
	}
}

func (m *Model) refreshGallery() tea.Cmd {
	if m.grid == nil {
		return nil
	}
	return func() tea.Msg {
		return galleryRefreshedMsg{err: m.grid.Refresh(m.ctx)}
	}
}

func (m *Model) doOp(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: fn(m.ctx)}
	}
}
