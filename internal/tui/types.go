package tui

import "github.com/csheth/poemette/internal/poems"

const (
	appTitle = "Poemette"

	placeholderTitle = "Select a Poem"
	placeholderHint  = "Choose a title from the collection on the left."

	styleLabel = "Reading Style:"
	listLabel  = "Select a Title"
	yearLabel  = "Original Publication Year:"
)

const (
	// DefaultBreakpoint is the terminal width below which the list collapses into an overlay.
	DefaultBreakpoint = 80

	defaultWindowWidth  = 100
	defaultWindowHeight = 30
	sidebarWidth        = 32
	minSidebarWidth     = 20
	minDetailWidth      = 20
	minBodyHeight       = 4
	narrowHeaderHeight  = 2
	statusHeight        = 1
)

// Sidebar rows, counted from the top of the panel.
const (
	sidebarRowHeader   = 0
	sidebarRowStyle    = 2
	sidebarRowSwitcher = 3
	sidebarRowList     = 5
	sidebarCardsTop    = 7
	cardHeight         = 3
)

type detailKind int

const (
	detailEmpty detailKind = iota
	detailShowing
)

// detail is what the right-hand pane shows: nothing yet, or one poem.
type detail struct {
	kind detailKind
	poem poems.Poem
}

func emptyDetail() detail {
	return detail{kind: detailEmpty}
}

func showingDetail(poem poems.Poem) detail {
	return detail{kind: detailShowing, poem: poem}
}
