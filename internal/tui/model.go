package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/csheth/poemette/internal/poems"
	"github.com/csheth/poemette/internal/reader"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Catalog *poems.Catalog
	Font    reader.FontMode
	// Breakpoint is the width in columns below which the layout collapses.
	// Zero means DefaultBreakpoint.
	Breakpoint int
	// Logger receives state transitions. The zero value discards them.
	Logger zerolog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	layout := newPageLayout(config.Breakpoint)
	vp := viewport.New(layout.detailWidth, layout.detailHeight)
	vp.MouseWheelEnabled = false

	h := help.New()
	h.Width = layout.windowWidth

	state := reader.NewState(config.Catalog, config.Font)
	m := &model{
		config:        config,
		catalog:       config.Catalog,
		state:         state,
		layout:        layout,
		keys:          newKeyMap(),
		help:          h,
		viewport:      vp,
		helpCache:     map[int]string{},
		viewportDirty: true,
		log:           config.Logger.With().Str("component", "tui").Logger(),
	}
	if id, ok := state.Selection.ID(); ok {
		m.cursor = m.catalog.Index(id)
		m.log.Debug().Str("poem", id).Msg("initial poem selected")
	}
	return m
}

type model struct {
	config  Config
	catalog *poems.Catalog
	state   reader.State
	layout  pageLayout

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	cursor        int
	listOffset    int
	helpVisible   bool
	helpOffset    int
	helpCache     map[int]string
	infoMessage   string
	viewportDirty bool

	log zerolog.Logger
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.detailWidth
		m.viewport.Height = m.layout.detailHeight
		m.help.Width = m.layout.windowWidth
		m.ensureCursorVisible()
		m.markViewportDirty()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.helpVisible = !m.helpVisible
		m.helpOffset = 0
		return m, nil
	}

	if m.helpVisible {
		switch {
		case key.Matches(msg, m.keys.back):
			m.helpVisible = false
		case key.Matches(msg, m.keys.up):
			m.scrollHelp(-1)
		case key.Matches(msg, m.keys.down):
			m.scrollHelp(1)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.back):
		if m.layout.narrow && m.state.Presentation.SidebarOpen() {
			m.closeSidebar()
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		if m.listVisible() {
			m.moveCursor(-1)
		} else {
			m.scroll(-1)
		}
	case key.Matches(msg, m.keys.down):
		if m.listVisible() {
			m.moveCursor(1)
		} else {
			m.scroll(1)
		}
	case key.Matches(msg, m.keys.open):
		if m.listVisible() && m.cursor >= 0 && m.cursor < m.catalog.Len() {
			m.selectPoem(m.catalog.At(m.cursor).ID)
		}
	case key.Matches(msg, m.keys.position):
		idx := int(msg.String()[0] - '1')
		if idx >= m.catalog.Len() {
			m.infoMessage = fmt.Sprintf("No poem at position %d.", idx+1)
			return m, nil
		}
		m.selectPoem(m.catalog.At(idx).ID)
	case key.Matches(msg, m.keys.pageUp):
		m.scroll(-m.viewport.Height)
	case key.Matches(msg, m.keys.pageDown):
		m.scroll(m.viewport.Height)
	case key.Matches(msg, m.keys.serif):
		m.setFont(reader.FontSerif)
	case key.Matches(msg, m.keys.allura):
		m.setFont(reader.FontAllura)
	case key.Matches(msg, m.keys.cursive):
		m.setFont(reader.FontCursive)
	case key.Matches(msg, m.keys.cycleFont):
		m.setFont(m.state.Presentation.Font().Next())
	case key.Matches(msg, m.keys.toggleList):
		if !m.layout.narrow {
			m.infoMessage = "The poem list is always shown at this width."
			return m, nil
		}
		if m.state.Presentation.SidebarOpen() {
			m.closeSidebar()
		} else {
			m.openSidebar()
		}
	}
	return m, nil
}

// selectPoem shows id in the detail pane and dismisses the overlay.
func (m *model) selectPoem(id string) {
	previous, _ := m.state.Selection.ID()
	if !m.state.Select(m.catalog, id) {
		m.log.Warn().Str("poem", id).Msg("ignoring selection of unknown poem")
		return
	}
	m.cursor = m.catalog.Index(id)
	m.ensureCursorVisible()
	m.infoMessage = ""
	m.viewport.GotoTop()
	m.log.Debug().Str("poem", id).Str("previous", previous).Msg("poem selected")
	m.markViewportDirty()
}

func (m *model) setFont(mode reader.FontMode) {
	m.state.Presentation.SetFont(mode)
	m.infoMessage = ""
	m.log.Debug().Stringer("font", mode).Msg("typography changed")
	m.markViewportDirty()
}

func (m *model) openSidebar() {
	m.state.Presentation.OpenSidebar()
	if id, ok := m.state.Selection.ID(); ok {
		m.cursor = m.catalog.Index(id)
	}
	m.ensureCursorVisible()
	m.log.Debug().Msg("poem list opened")
}

func (m *model) closeSidebar() {
	m.state.Presentation.CloseSidebar()
	m.log.Debug().Msg("poem list closed")
}

func (m *model) listVisible() bool {
	return !m.layout.narrow || m.state.Presentation.SidebarOpen()
}

func (m *model) moveCursor(delta int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.ensureCursorVisible()
}

// visibleCards is how many poem cards fit between the list label and the footer.
func (m *model) visibleCards() int {
	rows := m.layout.bodyHeight - sidebarCardsTop - 1
	if rows < cardHeight {
		return 1
	}
	return rows / cardHeight
}

func (m *model) ensureCursorVisible() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	visible := m.visibleCards()
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visible {
		m.listOffset = m.cursor - visible + 1
	}
	if maxOffset := m.catalog.Len() - visible; m.listOffset > maxOffset {
		m.listOffset = max(maxOffset, 0)
	}
}

func (m *model) scroll(delta int) {
	m.refreshViewportIfDirty()
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

func (m *model) scrollHelp(delta int) {
	m.helpOffset += delta
	if m.helpOffset < 0 {
		m.helpOffset = 0
	}
}

func (m *model) currentDetail() detail {
	poem, ok := m.state.Selection.Resolve(m.catalog)
	if !ok {
		return emptyDetail()
	}
	return showingDetail(poem)
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	content := buildDetailContent(
		m.currentDetail(),
		m.state.Presentation.Typography(),
		m.layout.detailWidth,
		m.layout.detailHeight,
	)
	m.viewport.SetContent(content)
	m.viewportDirty = false
}
