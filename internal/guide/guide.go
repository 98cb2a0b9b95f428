// Package guide builds the help sheet shown over the reader.
package guide

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Entry is one row of the help sheet.
type Entry struct {
	Key         string
	Description string
}

// Section groups related entries under a heading.
type Section struct {
	Title   string
	Entries []Entry
}

// Metadata carries just enough context for personalizing the sheet.
type Metadata struct {
	PoemCount  int
	Fonts      []Font
	Breakpoint int
}

// Font describes one typography preset for the reference table.
type Font struct {
	Name       string
	Family     string
	LineHeight float64
}

// Build returns the help sheet sections.
func Build(meta Metadata) []Section {
	selectHint := "Jump straight to a poem by its position"
	if meta.PoemCount > 0 {
		last := meta.PoemCount
		if last > 9 {
			last = 9
		}
		selectHint = fmt.Sprintf("Jump straight to poem 1–%d", last)
	}
	narrow := "Narrow terminals"
	if meta.Breakpoint > 0 {
		narrow = fmt.Sprintf("Narrow terminals (under %d columns)", meta.Breakpoint)
	}

	sections := []Section{
		{
			Title: "Reading",
			Entries: []Entry{
				{Key: "↑/k ↓/j", Description: "Move through the title list"},
				{Key: "enter", Description: "Open the highlighted poem"},
				{Key: "1-9", Description: selectHint},
				{Key: "pgup/pgdn", Description: "Scroll a long poem"},
			},
		},
		{
			Title: "Reading style",
			Entries: []Entry{
				{Key: "s", Description: "Serif"},
				{Key: "a", Description: "Allura"},
				{Key: "c", Description: "Cursive"},
				{Key: "f", Description: "Cycle through the styles"},
			},
		},
		{
			Title: narrow,
			Entries: []Entry{
				{Key: "m/tab", Description: "Open or close the poem list"},
				{Key: "esc", Description: "Close the poem list"},
			},
		},
		{
			Title: "General",
			Entries: []Entry{
				{Key: "?", Description: "Toggle this sheet"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
	return sections
}

// Markdown renders the sections and the typography reference as a markdown document.
func Markdown(meta Metadata) string {
	var b strings.Builder
	b.WriteString("# Poemette\n\n")
	for _, section := range Build(meta) {
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		b.WriteString("| Key | Action |\n| --- | --- |\n")
		for _, entry := range section.Entries {
			fmt.Fprintf(&b, "| `%s` | %s |\n", entry.Key, entry.Description)
		}
		b.WriteString("\n")
	}
	if len(meta.Fonts) > 0 {
		b.WriteString("## Typography\n\n")
		b.WriteString("| Style | Font family | Line height |\n| --- | --- | --- |\n")
		for _, font := range meta.Fonts {
			family := strings.ReplaceAll(font.Family, "|", `\|`)
			fmt.Fprintf(&b, "| %s | %s | %g |\n", font.Name, family, font.LineHeight)
		}
	}
	return b.String()
}

// Render turns markdown into styled terminal output wrapped at width.
func Render(markdown string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
