package paint

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Glyph is one grapheme cluster and the number of cells it occupies.
type Glyph struct {
	Text  string
	Width int
}

// Glyphs is a string split into grapheme clusters.
type Glyphs []Glyph

// NewGlyphs segments s into glyphs. Clusters that measure zero cells wide
// (control characters, lone combining marks) are given one cell so that
// placement always makes progress.
func NewGlyphs(s string) Glyphs {
	var out Glyphs
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		text := gr.Str()
		w := runewidth.StringWidth(text)
		if w < 1 {
			w = 1
		}
		out = append(out, Glyph{Text: text, Width: w})
	}
	return out
}

// Width returns the total cell width.
func (g Glyphs) Width() int {
	w := 0
	for _, glyph := range g {
		w += glyph.Width
	}
	return w
}
