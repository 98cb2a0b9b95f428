package reader

import (
	"fmt"
	"strings"
)

// FontMode names one of the typography presets.
type FontMode int

const (
	FontCursive FontMode = iota
	FontAllura
	FontSerif
)

// Typography pairs a font family stack with a line height.
type Typography struct {
	Mode       FontMode
	FontFamily string
	LineHeight float64
}

var typographyTable = map[FontMode]Typography{
	FontCursive: {
		Mode:       FontCursive,
		FontFamily: `cursive, "Segoe Script", "Brush Script MT", "Lucida Handwriting", "Monotype Corsiva", sans-serif`,
		LineHeight: 2,
	},
	FontAllura: {
		Mode:       FontAllura,
		FontFamily: "Allura, cursive, sans-serif",
		LineHeight: 1.8,
	},
	FontSerif: {
		Mode:       FontSerif,
		FontFamily: "Georgia, serif",
		LineHeight: 1.8,
	},
}

// Modes lists the presets in the order the style switcher shows them.
func Modes() []FontMode {
	return []FontMode{FontSerif, FontAllura, FontCursive}
}

func (f FontMode) String() string {
	switch f {
	case FontCursive:
		return "cursive"
	case FontAllura:
		return "allura"
	case FontSerif:
		return "serif"
	default:
		return fmt.Sprintf("FontMode(%d)", int(f))
	}
}

// Label is the capitalized name shown on the switcher.
func (f FontMode) Label() string {
	name := f.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Next returns the mode after f in switcher order, wrapping around.
func (f FontMode) Next() FontMode {
	modes := Modes()
	for idx, mode := range modes {
		if mode == f {
			return modes[(idx+1)%len(modes)]
		}
	}
	return FontCursive
}

// Typography returns the preset for f. Unknown modes fall back to cursive.
func (f FontMode) Typography() Typography {
	if t, ok := typographyTable[f]; ok {
		return t
	}
	return typographyTable[FontCursive]
}

// ParseFontMode accepts a mode name in any case.
func ParseFontMode(value string) (FontMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "cursive":
		return FontCursive, nil
	case "allura":
		return FontAllura, nil
	case "serif":
		return FontSerif, nil
	default:
		return FontCursive, fmt.Errorf("unknown font mode %q (want serif, allura or cursive)", value)
	}
}

// LineSpacing is the number of blank terminal rows drawn between verse lines.
func (t Typography) LineSpacing() int {
	spacing := int(t.LineHeight) - 1
	if spacing < 0 {
		return 0
	}
	return spacing
}
