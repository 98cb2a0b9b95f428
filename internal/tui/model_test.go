package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/csheth/poemette/internal/poems"
	"github.com/csheth/poemette/internal/reader"
)

func newTestModel(t *testing.T, catalog *poems.Catalog) *model {
	t.Helper()
	teaModel, ok := New(Config{Catalog: catalog}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	teaModel.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return teaModel
}

func sampleCatalog(t *testing.T) *poems.Catalog {
	t.Helper()
	catalog, err := poems.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return catalog
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func detailText(m *model) string {
	m.refreshViewportIfDirty()
	return ansi.Strip(m.viewport.View())
}

func selectedID(t *testing.T, m *model) string {
	t.Helper()
	id, ok := m.state.Selection.ID()
	if !ok {
		t.Fatal("expected a selection")
	}
	return id
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitialRenderShowsFirstPoem(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))

	if got := selectedID(t, m); got != "p1" {
		t.Fatalf("initial selection mismatch, got %q want p1", got)
	}
	detail := detailText(m)
	for _, want := range []string{"A Red, Red Rose", "— Robert Burns", "O my Luve is like a red, red rose,", "Original Publication Year: 1794"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail pane missing %q:\n%s", want, detail)
		}
	}
	if m.state.Presentation.Font() != reader.FontCursive {
		t.Fatalf("default font should be cursive, got %v", m.state.Presentation.Font())
	}
}

func TestSelectByPositionShowsPoem(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))

	press(t, m, runes("2"), runes("3"))

	if got := selectedID(t, m); got != "p3" {
		t.Fatalf("selection mismatch, got %q want p3", got)
	}
	detail := detailText(m)
	for _, want := range []string{"Sonnet 18", "— William Shakespeare", "Shall I compare thee to a summer's day?", "Original Publication Year: 1609"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail pane missing %q:\n%s", want, detail)
		}
	}
	if strings.Contains(detail, "The Road Not Taken") {
		t.Fatal("detail pane still shows the previous poem")
	}
	if m.cursor != 2 {
		t.Fatalf("cursor should follow the selection, got %d", m.cursor)
	}
}

func TestCursorNavigationSelectsOnEnter(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := selectedID(t, m); got != "p1" {
		t.Fatalf("moving the cursor must not change the selection, got %q", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := selectedID(t, m); got != "p2" {
		t.Fatalf("enter should select the poem under the cursor, got %q", got)
	}

	press(t, m, runes("j"), runes("j"), runes("j"))
	if m.cursor != 2 {
		t.Fatalf("cursor should clamp at the last poem, got %d", m.cursor)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp at the first poem, got %d", m.cursor)
	}
}

func TestUnknownSelectionKeepsCurrentPoem(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, runes("2"))

	m.selectPoem("p404")
	if got := selectedID(t, m); got != "p2" {
		t.Fatalf("unknown id changed the selection to %q", got)
	}

	press(t, m, runes("7"))
	if got := selectedID(t, m); got != "p2" {
		t.Fatalf("out of range position changed the selection to %q", got)
	}
	if m.infoMessage != "No poem at position 7." {
		t.Fatalf("unexpected info message %q", m.infoMessage)
	}
}

func TestFontKeysChangeTypographyOnly(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, runes("2"))

	cases := []struct {
		key  string
		want reader.FontMode
	}{
		{"s", reader.FontSerif},
		{"a", reader.FontAllura},
		{"c", reader.FontCursive},
		{"f", reader.FontSerif},
		{"f", reader.FontAllura},
	}
	for _, tc := range cases {
		press(t, m, runes(tc.key))
		if got := m.state.Presentation.Font(); got != tc.want {
			t.Fatalf("key %q: font got %v want %v", tc.key, got, tc.want)
		}
		if got := selectedID(t, m); got != "p2" {
			t.Fatalf("key %q changed the selection to %q", tc.key, got)
		}
	}
}

func TestEmptyCatalogShowsPlaceholder(t *testing.T) {
	empty, err := poems.New()
	if err != nil {
		t.Fatalf("empty catalog: %v", err)
	}
	m := newTestModel(t, empty)

	if _, ok := m.state.Selection.ID(); ok {
		t.Fatal("empty catalog should leave the selection absent")
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("1"), tea.KeyMsg{Type: tea.KeyDown})

	detail := detailText(m)
	if !strings.Contains(detail, placeholderTitle) {
		t.Fatalf("placeholder missing:\n%s", detail)
	}
	if strings.Contains(detail, yearLabel) {
		t.Fatalf("placeholder should not render poem details:\n%s", detail)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "0 poems") {
		t.Fatalf("sidebar footer should count zero poems:\n%s", view)
	}
}

func TestNarrowLayoutOverlay(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	if !m.layout.narrow {
		t.Fatal("60 columns should use the narrow layout")
	}
	view := ansi.Strip(m.View())
	if strings.Contains(view, listLabel) {
		t.Fatal("poem list should be hidden until opened")
	}
	if !strings.Contains(view, "☰") {
		t.Fatalf("narrow header missing menu button:\n%s", view)
	}

	press(t, m, runes("m"))
	if !m.state.Presentation.SidebarOpen() {
		t.Fatal("m should open the poem list")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, listLabel) {
		t.Fatalf("overlay missing list:\n%s", view)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := selectedID(t, m); got != "p3" {
		t.Fatalf("selection mismatch, got %q want p3", got)
	}
	if m.state.Presentation.SidebarOpen() {
		t.Fatal("selecting a poem should close the overlay")
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc}); isQuit(cmd) {
		t.Fatal("esc should close the overlay before quitting")
	}
	if m.state.Presentation.SidebarOpen() {
		t.Fatal("esc should close the overlay")
	}
	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !isQuit(cmd) {
		t.Fatal("esc without overlay should quit")
	}
}

func TestNarrowArrowsScrollPoem(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})
	press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})

	if m.cursor != 0 {
		t.Fatalf("hidden list should not move the cursor, got %d", m.cursor)
	}
	if m.viewport.YOffset != 2 {
		t.Fatalf("arrows should scroll the poem, got offset %d", m.viewport.YOffset)
	}
	press(t, m, runes("2"))
	if m.viewport.YOffset != 0 {
		t.Fatalf("new selection should scroll back to the top, got %d", m.viewport.YOffset)
	}
}

func TestNarrowWindowShowsWholeFooter(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, tea.WindowSizeMsg{Width: 26, Height: 80}, runes("3"))

	view := ansi.Strip(m.View())
	for _, want := range []string{"Sonnet 18", "Shakespeare", "1609"} {
		if !strings.Contains(view, want) {
			t.Fatalf("%q not visible at 26 columns:\n%s", want, view)
		}
	}
}

func TestWideLayoutIgnoresOverlayToggle(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, runes("m"))

	if m.state.Presentation.SidebarOpen() {
		t.Fatal("overlay should not open in the wide layout")
	}
	if m.infoMessage == "" {
		t.Fatal("expected a hint explaining the list is already visible")
	}
	view := ansi.Strip(m.View())
	for _, want := range []string{appTitle, styleLabel, listLabel, "The Road Not Taken", "by Robert Frost"} {
		if !strings.Contains(view, want) {
			t.Fatalf("sidebar missing %q:\n%s", want, view)
		}
	}
}

func TestHelpSheetToggle(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	press(t, m, tea.WindowSizeMsg{Width: 120, Height: 80})

	press(t, m, runes("?"))
	if !m.helpVisible {
		t.Fatal("? should open the help sheet")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Toggle this sheet") {
		t.Fatalf("help sheet missing key reference:\n%s", view)
	}

	press(t, m, runes("2"))
	if got := selectedID(t, m); got != "p1" {
		t.Fatalf("keys behind the help sheet should be ignored, selection %q", got)
	}

	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc}); isQuit(cmd) {
		t.Fatal("esc should close the help sheet, not quit")
	}
	if m.helpVisible {
		t.Fatal("esc should close the help sheet")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, sampleCatalog(t))
	if cmd := press(t, m, runes("q")); !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
}
