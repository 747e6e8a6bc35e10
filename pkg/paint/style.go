package paint

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/weft/pkg/attributes"
)

// Attr is a bit set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrStrikethrough
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}

// Style is the visual style of one cell. Nil colours mean "terminal default".
type Style struct {
	FG   lipgloss.TerminalColor
	BG   lipgloss.TerminalColor
	Attr Attr
}

// IsZero reports whether the style changes nothing.
func (s Style) IsZero() bool {
	return s.FG == nil && s.BG == nil && s.Attr == 0
}

// Merge overlays other onto s. Colours set in other win; attributes
// accumulate.
func (s Style) Merge(other Style) Style {
	if other.FG != nil {
		s.FG = other.FG
	}
	if other.BG != nil {
		s.BG = other.BG
	}
	s.Attr |= other.Attr
	return s
}

// Lipgloss converts the style for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.FG != nil {
		ls = ls.Foreground(s.FG)
	}
	if s.BG != nil {
		ls = ls.Background(s.BG)
	}
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrReverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

var attrKeys = []struct {
	key  string
	attr Attr
}{
	{"bold", AttrBold},
	{"dim", AttrDim},
	{"italic", AttrItalic},
	{"underline", AttrUnderline},
	{"reverse", AttrReverse},
	{"inverse", AttrReverse},
	{"strikethrough", AttrStrikethrough},
	{"crossed_out", AttrStrikethrough},
}

// StyleFrom extracts the cell style carried by a node's attributes:
// "foreground", "background" and the boolean text attributes.
func StyleFrom(attrs *attributes.Attributes) Style {
	var s Style
	if attrs == nil || attrs.Len() == 0 {
		return s
	}
	if c, ok := attrs.Color("foreground"); ok {
		s.FG = c
	}
	if c, ok := attrs.Color("background"); ok {
		s.BG = c
	}
	for _, k := range attrKeys {
		if on, ok := attrs.Bool(k.key); ok && on {
			s.Attr |= k.attr
		}
	}
	return s
}
