package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/poemette/internal/reader"
)

type sidebarTargetKind int

const (
	targetNone sidebarTargetKind = iota
	targetFont
	targetCard
	targetClose
)

type sidebarTarget struct {
	kind  sidebarTargetKind
	font  reader.FontMode
	index int
}

type buttonSpan struct {
	mode  reader.FontMode
	start int
	end   int
}

const (
	menuButtonLabel  = " ☰ "
	closeButtonLabel = "esc ✕ "
	switcherIndent   = 1
)

// fontButtonSpans returns the column range of each switcher button, relative to
// the sidebar's left edge.
func fontButtonSpans() []buttonSpan {
	spans := make([]buttonSpan, 0, len(reader.Modes()))
	col := switcherIndent
	for _, mode := range reader.Modes() {
		width := len(mode.Label()) + 2
		spans = append(spans, buttonSpan{mode: mode, start: col, end: col + width})
		col += width + 1
	}
	return spans
}

// sidebarHit maps a click inside the sidebar panel to what was clicked.
func (m *model) sidebarHit(x, y int) sidebarTarget {
	switch {
	case y == sidebarRowHeader:
		if m.layout.narrow && x >= m.layout.sidebarWidth-len([]rune(closeButtonLabel)) {
			return sidebarTarget{kind: targetClose}
		}
	case y == sidebarRowSwitcher:
		for _, span := range fontButtonSpans() {
			if x >= span.start && x < span.end {
				return sidebarTarget{kind: targetFont, font: span.mode}
			}
		}
	case y >= sidebarCardsTop:
		rel := y - sidebarCardsTop
		slot := rel / cardHeight
		if rel%cardHeight == cardHeight-1 || slot >= m.visibleCards() {
			return sidebarTarget{}
		}
		idx := m.listOffset + slot
		if idx < m.catalog.Len() {
			return sidebarTarget{kind: targetCard, index: idx}
		}
	}
	return sidebarTarget{}
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.helpVisible {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll(3)
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if !m.listVisible() {
		if m.layout.narrow && msg.Y == 0 && msg.X < len([]rune(menuButtonLabel)) {
			m.openSidebar()
		}
		return m, nil
	}
	if msg.X >= m.layout.sidebarWidth {
		if m.layout.narrow {
			m.closeSidebar()
		}
		return m, nil
	}

	target := m.sidebarHit(msg.X, msg.Y)
	switch target.kind {
	case targetFont:
		m.setFont(target.font)
	case targetCard:
		m.selectPoem(m.catalog.At(target.index).ID)
	case targetClose:
		m.closeSidebar()
	}
	return m, nil
}
