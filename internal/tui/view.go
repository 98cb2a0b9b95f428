package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/poemette/internal/guide"
	"github.com/csheth/poemette/internal/poems"
	"github.com/csheth/poemette/internal/reader"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()

	var body string
	switch {
	case m.helpVisible:
		body = m.helpSheetView()
	case m.layout.narrow && m.state.Presentation.SidebarOpen():
		body = m.overlayView()
	case m.layout.narrow:
		body = lipgloss.JoinVertical(lipgloss.Left, m.narrowHeaderView(), m.viewport.View())
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.dividerView(), m.viewport.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusView())
}

func (m *model) sidebarView() string {
	return strings.Join(m.sidebarLines(), "\n")
}

// sidebarLines renders the panel as exactly bodyHeight rows of sidebarWidth columns.
// Row positions must stay in step with the sidebarRow constants used for hit testing.
func (m *model) sidebarLines() []string {
	width := m.layout.sidebarWidth
	rows := make([]string, m.layout.bodyHeight)

	rows[sidebarRowHeader] = m.sidebarHeader(width)
	if sidebarRowStyle < len(rows) {
		rows[sidebarRowStyle] = " " + sidebarLabelStyle.Render(styleLabel)
	}
	if sidebarRowSwitcher < len(rows) {
		rows[sidebarRowSwitcher] = m.switcherView()
	}
	if sidebarRowList < len(rows) {
		rows[sidebarRowList] = " " + sidebarLabelStyle.Render(listLabel)
	}

	row := sidebarCardsTop
	end := min(m.listOffset+m.visibleCards(), m.catalog.Len())
	for idx := m.listOffset; idx < end; idx++ {
		for _, line := range m.cardLines(idx, m.catalog.At(idx), width) {
			if row >= len(rows)-1 {
				break
			}
			rows[row] = line
			row++
		}
	}
	if len(rows) > sidebarCardsTop {
		rows[len(rows)-1] = sidebarFooterStyle.Render(m.sidebarFooter())
	}

	for idx, line := range rows {
		rows[idx] = fitWidth(line, width)
	}
	return rows
}

func (m *model) sidebarHeader(width int) string {
	left := " " + appTitle
	if !m.layout.narrow {
		return sidebarHeaderStyle.Width(width).Render(left)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(closeButtonLabel)
	if gap < 1 {
		gap = 1
	}
	return sidebarHeaderStyle.Width(width).Render(left + strings.Repeat(" ", gap) + closeButtonLabel)
}

func (m *model) switcherView() string {
	active := m.state.Presentation.Font()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", switcherIndent))
	for idx, span := range fontButtonSpans() {
		if idx > 0 {
			b.WriteRune(' ')
		}
		label := " " + span.mode.Label() + " "
		if span.mode == active {
			b.WriteString(switcherActiveStyle.Render(label))
		} else {
			b.WriteString(switcherStyle.Render(label))
		}
	}
	return b.String()
}

func (m *model) cardLines(idx int, poem poems.Poem, width int) []string {
	titleStyle, _ := typographyStyles(m.state.Presentation.Font())
	bylineStyle := cardAuthorStyle
	selectedID, _ := m.state.Selection.ID()
	if poem.ID == selectedID {
		titleStyle = titleStyle.Background(amberLightColor)
		bylineStyle = cardSelectedStyle
	}
	marker := "  "
	if idx == m.cursor {
		marker = cursorStyle.Render("▸ ")
	}
	inner := width - 2
	if inner < 4 {
		inner = 4
	}
	title := truncate.StringWithTail(poem.Title, uint(inner-1), "…")
	byline := truncate.StringWithTail("by "+poem.Author, uint(inner-1), "…")
	return []string{
		marker + titleStyle.Width(inner).Render(" "+title),
		"  " + bylineStyle.Width(inner).Render(" "+byline),
		"",
	}
}

func (m *model) sidebarFooter() string {
	n := m.catalog.Len()
	if n == 1 {
		return " 1 poem"
	}
	return fmt.Sprintf(" %d poems", n)
}

func (m *model) dividerView() string {
	lines := make([]string, m.layout.bodyHeight)
	for i := range lines {
		lines[i] = dividerStyle.Render("│")
	}
	return strings.Join(lines, "\n")
}

func (m *model) narrowHeaderView() string {
	width := m.layout.windowWidth
	button := menuButtonStyle.Render(menuButtonLabel)
	title := narrowHeaderStyle.Render(appTitle)
	gap := width - lipgloss.Width(button) - lipgloss.Width(title)
	bar := button + lipgloss.PlaceHorizontal(max(gap, 0)+lipgloss.Width(title), lipgloss.Center, title)
	rule := dividerStyle.Render(strings.Repeat("─", max(width, 1)))
	return fitWidth(bar, width) + "\n" + rule
}

// overlayView draws the poem list over a dimmed backdrop.
func (m *model) overlayView() string {
	lines := m.sidebarLines()
	backdropWidth := m.layout.windowWidth - m.layout.sidebarWidth
	for idx, line := range lines {
		if backdropWidth > 0 {
			line += backdropStyle.Render(strings.Repeat("░", backdropWidth))
		}
		lines[idx] = line
	}
	return strings.Join(lines, "\n")
}

func (m *model) helpSheetView() string {
	width := m.layout.windowWidth
	rendered, ok := m.helpCache[width]
	if !ok {
		markdown := guide.Markdown(m.guideMetadata())
		out, err := guide.Render(markdown, width-4)
		if err != nil {
			m.log.Error().Err(err).Msg("render help sheet")
			out = markdown
		}
		rendered = out
		m.helpCache[width] = rendered
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if maxOffset := len(lines) - m.layout.bodyHeight; m.helpOffset > maxOffset {
		m.helpOffset = max(maxOffset, 0)
	}
	lines = lines[m.helpOffset:]
	if len(lines) > m.layout.bodyHeight {
		lines = lines[:m.layout.bodyHeight]
	}
	return strings.Join(lines, "\n")
}

func (m *model) guideMetadata() guide.Metadata {
	fonts := make([]guide.Font, 0, len(reader.Modes()))
	for _, mode := range reader.Modes() {
		typo := mode.Typography()
		fonts = append(fonts, guide.Font{Name: mode.Label(), Family: typo.FontFamily, LineHeight: typo.LineHeight})
	}
	return guide.Metadata{
		PoemCount:  m.catalog.Len(),
		Fonts:      fonts,
		Breakpoint: m.layout.breakpoint,
	}
}

func (m *model) statusView() string {
	line := m.help.View(m.keys)
	if m.infoMessage != "" {
		line = infoStyle.Render(m.infoMessage) + "  " + line
	}
	return truncate.StringWithTail(line, uint(max(m.layout.windowWidth, 1)), "…")
}

// fitWidth truncates or pads s to exactly width columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = truncate.String(s, uint(width))
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
