package tuitest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Recording holds every byte the program wrote to the terminal.
type Recording struct {
	Raw []byte
}

// Plain returns the whole session with escape sequences removed. Bubble Tea
// repaints only the lines that changed, so no single frame is a full screen;
// assertions check what was ever drawn instead.
func (r *Recording) Plain() string {
	if r == nil {
		return ""
	}
	text := ansi.Strip(strings.ReplaceAll(string(r.Raw), "\r", ""))
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Contains reports whether text appeared anywhere in the session.
func (r *Recording) Contains(text string) bool {
	return strings.Contains(r.Plain(), text)
}
