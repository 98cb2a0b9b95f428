package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/poemette/internal/reader"
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	breakpoint   int
	narrow       bool
	sidebarWidth int
	detailWidth  int
	detailHeight int
	bodyHeight   int
}

func newPageLayout(breakpoint int) pageLayout {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	l := pageLayout{breakpoint: breakpoint}
	l.Update(defaultWindowWidth, defaultWindowHeight)
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	l.narrow = width < l.breakpoint

	l.bodyHeight = height - statusHeight
	if l.bodyHeight < minBodyHeight {
		l.bodyHeight = minBodyHeight
	}

	if l.narrow {
		// The overlay leaves a sliver of backdrop to click on.
		l.sidebarWidth = sidebarWidth
		if l.sidebarWidth > width-4 {
			l.sidebarWidth = width - 4
		}
		if l.sidebarWidth < minSidebarWidth {
			l.sidebarWidth = minSidebarWidth
		}
		if l.sidebarWidth > width-1 {
			l.sidebarWidth = max(width-1, 1)
		}
		l.detailWidth = width
		l.detailHeight = l.bodyHeight - narrowHeaderHeight
	} else {
		l.sidebarWidth = sidebarWidth
		if l.sidebarWidth > width/2 {
			l.sidebarWidth = width / 2
		}
		if l.sidebarWidth < minSidebarWidth {
			l.sidebarWidth = minSidebarWidth
		}
		// One column for the divider.
		l.detailWidth = width - l.sidebarWidth - 1
		l.detailHeight = l.bodyHeight
	}
	if l.detailWidth < minDetailWidth {
		l.detailWidth = minDetailWidth
	}
	if l.detailHeight < minBodyHeight-narrowHeaderHeight {
		l.detailHeight = minBodyHeight - narrowHeaderHeight
	}
}

type contentBuilder struct {
	builder strings.Builder
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
}

// WriteLine writes s centered in width and terminates the line.
func (cb *contentBuilder) WriteLine(s string, width int) {
	cb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
	cb.WriteRune('\n')
}

// WriteWrapped soft-wraps s at wrap columns and writes each part centered in width.
func (cb *contentBuilder) WriteWrapped(s string, style lipgloss.Style, wrap, width int) {
	for _, part := range strings.Split(wordwrap.String(s, wrap), "\n") {
		cb.WriteLine(style.Render(part), width)
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

// buildDetailContent renders the pane for d at width. It reads its inputs only.
func buildDetailContent(d detail, typo reader.Typography, width, height int) string {
	if d.kind == detailEmpty {
		return buildPlaceholder(width, height)
	}
	poem := d.poem
	titleStyle, bodyStyle := typographyStyles(typo.Mode)
	wrap := wrapWidth(width, 6)
	rule := ruleStyle.Render(strings.Repeat("─", min(wrap, 40)))

	cb := &contentBuilder{}
	cb.WriteRune('\n')
	cb.WriteWrapped(poem.Title, titleStyle, wrap, width)
	cb.WriteWrapped("— "+poem.Author, authorStyle, wrap, width)
	cb.WriteLine(rule, width)
	cb.WriteRune('\n')

	lines := splitLinesPreserve(poem.Content)
	spacing := typo.LineSpacing()
	for idx, line := range lines {
		if strings.TrimSpace(line) == "" {
			cb.WriteRune('\n')
		} else {
			for _, part := range strings.Split(wordwrap.String(line, wrap), "\n") {
				cb.WriteLine(bodyStyle.Render(part), width)
			}
		}
		if idx == len(lines)-1 {
			continue
		}
		for i := 0; i < spacing; i++ {
			cb.WriteRune('\n')
		}
	}

	cb.WriteRune('\n')
	cb.WriteLine(rule, width)
	cb.WriteWrapped(yearLabel+" "+strconv.Itoa(poem.Year), yearStyle, wrap, width)
	return cb.String()
}

func buildPlaceholder(width, height int) string {
	block := lipgloss.JoinVertical(
		lipgloss.Center,
		placeholderIconStyle.Render("❦"),
		"",
		placeholderTitleStyle.Render(placeholderTitle),
		helperStyle.Render(wordwrap.String(placeholderHint, wrapWidth(width, 4))),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func wrapWidth(width, padding int) int {
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 10 {
		available = 10
	}
	return available
}

func splitLinesPreserve(content string) []string {
	if content == "" {
		return []string{""}
	}
	return strings.Split(content, "\n")
}
