package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"soulsync.dev/soulsync/pkg/media"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case watchStartedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			break
		}
		switch msg.target {
		case bucketWatch:
			m.bucketCh = msg.ch
		case settingsWatch:
			m.settingsCh = msg.ch
		}
		cmds = append(cmds, waitForSnapshot(msg.target, msg.ch))

	case snapshotMsg:
		switch msg.target {
		case bucketWatch:
			m.bucket.Apply(msg.snap)
			m.items = m.bucket.Items()
			if m.cursor >= len(m.items) {
				m.cursor = len(m.items) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
			cmds = append(cmds, waitForSnapshot(bucketWatch, m.bucketCh))
		case settingsWatch:
			m.settings.Apply(m.ctx, msg.snap)
			if m.grid != nil {
				m.grid.SetLimit(m.settings.Current().NumberOfMediaItems)
				cmds = append(cmds, m.refreshGallery())
			}
			cmds = append(cmds, waitForSnapshot(settingsWatch, m.settingsCh))
		}

	case watchStoppedMsg:
		switch msg.target {
		case bucketWatch:
			m.bucketCh = nil
		case settingsWatch:
			m.settingsCh = nil
		}

	case galleryRefreshedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		if n := len(m.mediaItems()); m.mediaIndex >= n {
			m.mediaIndex = n - 1
		}
		if m.mediaIndex < 0 {
			m.mediaIndex = 0
		}

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
	}

	if m.mode == modeInsertTitle || m.mode == modeInsertDescription {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch m.mode {
	case modeInsertTitle, modeInsertDescription:
		return m.handleInsertKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	}

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.cancel()
		return tea.Quit, true
	case "tab":
		m.tab = (m.tab + 1) % 3
		return nil, true
	case "1":
		m.tab = tabBucket
		return nil, true
	case "2":
		m.tab = tabGallery
		return nil, true
	case "3":
		m.tab = tabSettings
		return nil, true
	}

	switch m.tab {
	case tabBucket:
		return m.handleBucketKey(key)
	case tabGallery:
		return m.handleGalleryKey(key)
	case tabSettings:
		return m.handleSettingsKey(key)
	}
	return nil, false
}

func (m *Model) handleBucketKey(key string) (tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return nil, true
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil, true
	case "a":
		m.mode = modeInsertTitle
		m.editingID = ""
		m.insertTitle = ""
		m.input.Reset()
		m.input.Placeholder = "Title"
		m.input.Focus()
		return nil, true
	case "e":
		item, ok := m.currentItem()
		if !ok {
			return nil, true
		}
		m.mode = modeInsertTitle
		m.editingID = item.ID
		m.insertTitle = ""
		m.input.Reset()
		m.input.Placeholder = "Title"
		m.input.SetValue(item.Title)
		m.input.Focus()
		return nil, true
	case "x":
		item, ok := m.currentItem()
		if !ok {
			return nil, true
		}
		return m.doOp(func(ctx context.Context) error {
			return m.bucket.ToggleCompletion(ctx, item)
		}), true
	case "D":
		item, ok := m.currentItem()
		if !ok {
			return nil, true
		}
		m.mode = modeConfirm
		m.confirm = confirmDeleteItem
		m.confirmID = item.ID
		return nil, true
	}
	return nil, false
}

func (m *Model) handleGalleryKey(key string) (tea.Cmd, bool) {
	if m.grid == nil {
		return nil, false
	}
	switch key {
	case "j", "right", "down":
		if m.mediaIndex < len(m.mediaItems())-1 {
			m.mediaIndex++
		}
		return nil, true
	case "k", "left", "up":
		if m.mediaIndex > 0 {
			m.mediaIndex--
		}
		return nil, true
	case "r":
		return m.refreshGallery(), true
	case "v":
		if m.grid.Mode() == media.Browsing {
			m.grid.EnterSelection()
		} else {
			m.grid.ExitSelection()
		}
		return nil, true
	case "esc":
		m.grid.ExitSelection()
		return nil, true
	case " ", "space":
		item, ok := m.currentMedia()
		if !ok {
			return nil, true
		}
		m.grid.Tap(item)
		return nil, true
	case "D":
		if len(m.grid.Selected()) > 0 {
			m.mode = modeConfirm
			m.confirm = confirmDeleteSelected
			return nil, true
		}
		item, ok := m.currentMedia()
		if !ok {
			return nil, true
		}
		if m.grid.LongPress(item) == media.TapConfirmDelete {
			m.mode = modeConfirm
			m.confirm = confirmDeleteMedia
			m.confirmID = item.URI
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) handleSettingsKey(key string) (tea.Cmd, bool) {
	switch key {
	case "z":
		m.settings.SetZen(!m.settings.Zen())
		return nil, true
	}
	return nil, false
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return nil, true
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modeInsertTitle {
			if value == "" {
				m.status = "title is required"
				return nil, true
			}
			m.insertTitle = value
			m.mode = modeInsertDescription
			m.input.Reset()
			m.input.Placeholder = "Description (optional)"
			return nil, true
		}

		title, description := m.insertTitle, value
		id := m.editingID
		m.mode = modeNormal
		m.input.Blur()
		m.input.Reset()
		if id == "" {
			return m.doOp(func(ctx context.Context) error {
				return m.bucket.AddItem(ctx, title, description)
			}), true
		}
		return m.doOp(func(ctx context.Context) error {
			return m.bucket.EditItem(ctx, id, title, description)
		}), true
	}
	return nil, false
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		action := m.confirm
		id := m.confirmID
		m.mode = modeNormal
		m.confirm = confirmNone
		m.confirmID = ""
		switch action {
		case confirmDeleteItem:
			return m.doOp(func(ctx context.Context) error {
				return m.bucket.DeleteItem(ctx, id)
			}), true
		case confirmDeleteMedia:
			return m.doOp(func(ctx context.Context) error {
				return m.grid.DeleteItem(ctx, id)
			}), true
		case confirmDeleteSelected:
			return m.doOp(func(ctx context.Context) error {
				return m.grid.DeleteSelected(ctx)
			}), true
		}
		return nil, true
	case "n", "N", "esc":
		m.mode = modeNormal
		m.confirm = confirmNone
		m.confirmID = ""
		return nil, true
	}
	return nil, true
}
