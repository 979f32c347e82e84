package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"soulsync.dev/soulsync/pkg/blob"
	"soulsync.dev/soulsync/pkg/media"
	"soulsync.dev/soulsync/pkg/sky"
)

var (
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Faint(true)
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewSkyStrip())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabBucket:
		b.WriteString(m.viewBucket())
	case tabGallery:
		b.WriteString(m.viewGallery())
	case tabSettings:
		b.WriteString(m.viewSettings())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewSkyStrip paints a thin gradient band with a handful of stars, the
// terminal's stand-in for the home screen backdrop.
func (m *Model) viewSkyStrip() string {
	top, bottom := m.gradient()
	width := m.termWidth
	if width <= 0 {
		width = 80
	}

	stars := sky.Generate(width/8, float64(width), 2, m.rng)
	lines := []([]rune){
		[]rune(strings.Repeat(" ", width)),
		[]rune(strings.Repeat(" ", width)),
	}
	if !m.settings.Zen() {
		for _, s := range stars {
			row := int(s.Y)
			col := int(s.X)
			if row < 0 || row > 1 || col < 0 || col >= width {
				continue
			}
			if s.Size >= 2.5 {
				lines[row][col] = '✦'
			} else {
				lines[row][col] = '·'
			}
		}
	}

	topStyle := lipgloss.NewStyle().Background(lipgloss.Color(top)).Foreground(lipgloss.Color("255"))
	bottomStyle := lipgloss.NewStyle().Background(lipgloss.Color(bottom)).Foreground(lipgloss.Color("255"))
	return topStyle.Render(string(lines[0])) + "\n" + bottomStyle.Render(string(lines[1]))
}

func (m *Model) viewTabs() string {
	names := []string{"bucket", "gallery", "settings"}
	parts := make([]string, len(names))
	for i, name := range names {
		if tab(i) == m.tab {
			parts[i] = tabActiveStyle.Render(fmt.Sprintf("%d:%s", i+1, name))
		} else {
			parts[i] = tabStyle.Render(fmt.Sprintf("%d:%s", i+1, name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewBucket() string {
	var b strings.Builder

	items := m.visibleItems()
	b.WriteString(titleStyle.Render(fmt.Sprintf("bucket list · %d items", len(items))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(faintStyle.Render("  nothing here yet · a adds an item"))
		b.WriteString("\n")
	}

	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("→ ")
		}
		mark := "○"
		if item.Completed {
			mark = doneStyle.Render("✔")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, item.Title))
		if item.Description != "" {
			b.WriteString(faintStyle.Render("      " + item.Description))
			b.WriteString("\n")
		}
	}

	switch m.mode {
	case modeInsertTitle:
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("title: "))
		b.WriteString(m.input.View())
	case modeInsertDescription:
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(m.insertTitle+" · description: "))
		b.WriteString(m.input.View())
	case modeConfirm:
		if m.confirm == confirmDeleteItem {
			b.WriteString("\n")
			b.WriteString(statusStyle.Render("delete this item? y/n"))
		}
	}
	return b.String()
}

func (m *Model) viewGallery() string {
	if m.grid == nil {
		return faintStyle.Render("no media library configured")
	}

	var b strings.Builder
	rows := m.grid.Rows()
	count := len(media.Flatten(rows))
	label := fmt.Sprintf("gallery · %d shown", count)
	if m.grid.Mode() == media.Selecting {
		label += fmt.Sprintf(" · selecting (%d)", len(m.grid.Selected()))
	}
	b.WriteString(titleStyle.Render(label))
	b.WriteString("\n\n")

	if count == 0 {
		b.WriteString(faintStyle.Render("  library is empty"))
		b.WriteString("\n")
	}

	index := 0
	for _, row := range rows {
		cellWidth := int(media.RowWidth(len(row), float64(m.termWidth), 1))
		if cellWidth < 8 {
			cellWidth = 8
		}
		cells := make([]string, 0, len(row))
		for _, item := range row {
			cells = append(cells, m.viewCell(item, index, cellWidth))
			index++
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if m.mode == modeConfirm {
		switch m.confirm {
		case confirmDeleteMedia:
			b.WriteString("\n")
			b.WriteString(statusStyle.Render("delete this asset? y/n"))
		case confirmDeleteSelected:
			b.WriteString("\n")
			b.WriteString(statusStyle.Render(fmt.Sprintf("delete %d selected assets? y/n", len(m.grid.Selected()))))
		}
	}
	return b.String()
}

func (m *Model) viewCell(item media.Item, index, width int) string {
	icon := "img"
	if item.Kind == media.KindVideo {
		icon = "vid"
	}
	name := item.URI
	if p, err := blob.PathFromURL(item.URI); err == nil {
		name = path.Base(p)
	}
	label := truncate.StringWithTail(fmt.Sprintf(" %s %s ", icon, name), uint(width), "… ")

	style := lipgloss.NewStyle().Width(width)
	if m.grid.IsSelected(item.URI) {
		style = style.Reverse(true)
	}
	if index == m.mediaIndex {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(label)
}

func (m *Model) viewSettings() string {
	cfg := m.settings.Current()
	var b strings.Builder
	b.WriteString(titleStyle.Render("settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  numberOfStars         %d\n", cfg.NumberOfStars))
	b.WriteString(fmt.Sprintf("  longPressDuration     %d ms\n", cfg.LongPressDuration))
	b.WriteString(fmt.Sprintf("  numberOfMediaItems    %d\n", cfg.NumberOfMediaItems))
	b.WriteString(fmt.Sprintf("  useDynamicBackground  %t\n", cfg.UseDynamicBackground))
	zen := "off"
	if m.settings.Zen() {
		zen = "on"
	}
	b.WriteString(fmt.Sprintf("  zen mode              %s\n", zen))
	return b.String()
}

func (m *Model) viewFooter() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	switch m.tab {
	case tabBucket:
		return faintStyle.Render("j/k move · a add · e edit · x toggle · D delete · tab switch · q quit")
	case tabGallery:
		return faintStyle.Render("j/k move · v select mode · space toggle · D delete · r reshuffle · q quit")
	default:
		return faintStyle.Render("z zen · tab switch · q quit")
	}
}
