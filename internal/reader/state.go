// Package reader models what the poem reader is showing: the selected poem and the
// presentation settings it is drawn with.
package reader

import "github.com/csheth/poemette/internal/poems"

// Selection is the id of the displayed poem, if any.
type Selection struct {
	id    string
	valid bool
}

// ID returns the selected id. The second value is false before anything is selected.
func (s Selection) ID() (string, bool) {
	return s.id, s.valid
}

// Select points the selection at id when the catalog contains it. Unknown ids leave
// the selection untouched and report false.
func (s *Selection) Select(catalog *poems.Catalog, id string) bool {
	if catalog.Index(id) < 0 {
		return false
	}
	s.id = id
	s.valid = true
	return true
}

// EnsureDefault selects the first catalog entry when nothing is selected yet.
func (s *Selection) EnsureDefault(catalog *poems.Catalog) bool {
	if s.valid {
		return false
	}
	first, ok := catalog.First()
	if !ok {
		return false
	}
	s.id = first.ID
	s.valid = true
	return true
}

// Resolve returns the selected poem. It reports false when nothing is selected or the
// id no longer resolves.
func (s Selection) Resolve(catalog *poems.Catalog) (poems.Poem, bool) {
	if !s.valid {
		return poems.Poem{}, false
	}
	return catalog.Find(s.id)
}

// Presentation holds the typography mode and the narrow-layout sidebar flag.
type Presentation struct {
	font        FontMode
	sidebarOpen bool
}

func (p Presentation) Font() FontMode { return p.font }

func (p Presentation) Typography() Typography { return p.font.Typography() }

func (p Presentation) SidebarOpen() bool { return p.sidebarOpen }

func (p *Presentation) SetFont(mode FontMode) { p.font = mode }

func (p *Presentation) OpenSidebar() { p.sidebarOpen = true }

func (p *Presentation) CloseSidebar() { p.sidebarOpen = false }

func (p *Presentation) ToggleSidebar() { p.sidebarOpen = !p.sidebarOpen }

// State is the reader's full mutable state.
type State struct {
	Selection    Selection
	Presentation Presentation
}

// NewState returns a state using font and showing the first poem of catalog.
func NewState(catalog *poems.Catalog, font FontMode) State {
	state := State{Presentation: Presentation{font: font}}
	state.Selection.EnsureDefault(catalog)
	return state
}

// Select changes the selection and dismisses the sidebar overlay. The overlay closes
// even when id is unknown.
func (s *State) Select(catalog *poems.Catalog, id string) bool {
	ok := s.Selection.Select(catalog, id)
	s.Presentation.CloseSidebar()
	return ok
}
