package paint

import (
	"strings"

	"github.com/go-drift/weft/pkg/geometry"
)

// Cell is one terminal cell. A wide glyph occupies its first cell; the
// following cells are continuations with an empty Text and zero Width.
type Cell struct {
	Text  string
	Width int
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Text: " ", Width: 1}
}

// IsContinuation reports whether c is covered by a wide glyph to its left.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Buffer is a grid of cells the paint pass writes into.
type Buffer struct {
	cells []Cell
	size  geometry.Size
}

// NewBuffer creates a blank buffer.
func NewBuffer(size geometry.Size) *Buffer {
	b := &Buffer{size: size, cells: make([]Cell, size.Area())}
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() geometry.Size {
	return b.size
}

// Region returns the whole buffer as a region at the origin.
func (b *Buffer) Region() geometry.Region {
	return geometry.RegionFrom(geometry.Pos{}, b.size)
}

// InBounds reports whether p is inside the buffer.
func (b *Buffer) InBounds(p geometry.Pos) bool {
	return p.X >= 0 && p.X < b.size.Width && p.Y >= 0 && p.Y < b.size.Height
}

func (b *Buffer) index(p geometry.Pos) int {
	return p.Y*b.size.Width + p.X
}

// Get returns the cell at p, or an empty cell if out of bounds.
func (b *Buffer) Get(p geometry.Pos) Cell {
	if !b.InBounds(p) {
		return EmptyCell()
	}
	return b.cells[b.index(p)]
}

// Set writes c at p. Out of bounds writes are ignored.
func (b *Buffer) Set(p geometry.Pos, c Cell) {
	if !b.InBounds(p) {
		return
	}
	b.cells[b.index(p)] = c
}

// SetStyle merges s into the style of the cell at p.
func (b *Buffer) SetStyle(p geometry.Pos, s Style) {
	if !b.InBounds(p) {
		return
	}
	i := b.index(p)
	b.cells[i].Style = b.cells[i].Style.Merge(s)
}

// Clear resets every cell.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// Resize changes the dimensions, keeping content that still fits.
func (b *Buffer) Resize(size geometry.Size) {
	if size == b.size {
		return
	}
	next := NewBuffer(size)
	for y := 0; y < min(size.Height, b.size.Height); y++ {
		for x := 0; x < min(size.Width, b.size.Width); x++ {
			p := geometry.NewPos(x, y)
			next.cells[next.index(p)] = b.cells[b.index(p)]
		}
	}
	*b = *next
}

// Line returns row y as plain text with trailing spaces removed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.size.Height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.size.Width; x++ {
		c := b.cells[b.index(geometry.NewPos(x, y))]
		if c.IsContinuation() {
			continue
		}
		sb.WriteString(c.Text)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the buffer as plain text, one line per row, with trailing
// spaces and trailing blank lines removed.
func (b *Buffer) String() string {
	lines := make([]string, b.size.Height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer as ANSI-styled text. Runs of cells sharing a
// style are rendered together.
func (b *Buffer) Render() string {
	var out strings.Builder
	for y := 0; y < b.size.Height; y++ {
		var run strings.Builder
		var runStyle Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle.IsZero() {
				out.WriteString(run.String())
			} else {
				out.WriteString(runStyle.Lipgloss().Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.size.Width; x++ {
			c := b.cells[b.index(geometry.NewPos(x, y))]
			if c.IsContinuation() {
				continue
			}
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run.WriteString(c.Text)
		}
		flush()
		if y < b.size.Height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
