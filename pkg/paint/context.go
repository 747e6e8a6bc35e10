package paint

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
)

// Unsized is a paint context that has not yet been bound to a node.
type Unsized struct {
	buf  *Buffer
	clip *geometry.Region
}

// NewContext creates the root paint context for buf.
func NewContext(buf *Buffer) Unsized {
	return Unsized{buf: buf}
}

// Buffer returns the target buffer.
func (u Unsized) Buffer() *Buffer {
	return u.buf
}

// Sized binds the context to a node of the given size at pos.
func (u Unsized) Sized(size geometry.Size, pos geometry.Pos) *Sized {
	return &Sized{
		buf:       u.buf,
		clip:      u.clip,
		LocalSize: size,
		GlobalPos: pos,
	}
}

// Sized is a paint context bound to one node.
type Sized struct {
	buf  *Buffer
	clip *geometry.Region

	LocalSize geometry.Size
	GlobalPos geometry.Pos
}

// CreateRegion returns the screen region covered by the node.
func (s *Sized) CreateRegion() geometry.Region {
	return geometry.RegionFrom(s.GlobalPos, s.LocalSize)
}

// SetClipRegion restricts writes to r, intersected with any clip already in
// effect.
func (s *Sized) SetClipRegion(r geometry.Region) {
	if s.clip != nil {
		r = r.Intersect(*s.clip)
	}
	s.clip = &r
}

// Clip returns the active clip region, if any.
func (s *Sized) Clip() (geometry.Region, bool) {
	if s.clip == nil {
		return geometry.Region{}, false
	}
	return *s.clip, true
}

// ToUnsized returns a context for painting children, carrying the clip.
func (s *Sized) ToUnsized() Unsized {
	return Unsized{buf: s.buf, clip: s.clip}
}

func (s *Sized) inLocalBounds(p geometry.LocalPos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.LocalSize.Width && p.Y < s.LocalSize.Height
}

func (s *Sized) global(p geometry.LocalPos) geometry.Pos {
	return geometry.NewPos(s.GlobalPos.X+p.X, s.GlobalPos.Y+p.Y)
}

func (s *Sized) writable(p geometry.Pos) bool {
	if s.clip != nil && !s.clip.Contains(p) {
		return false
	}
	return s.buf.InBounds(p)
}

// SetStyle merges style into the cell at p.
func (s *Sized) SetStyle(style Style, p geometry.LocalPos) {
	if style.IsZero() || !s.inLocalBounds(p) {
		return
	}
	if g := s.global(p); s.writable(g) {
		s.buf.SetStyle(g, style)
	}
}

// SetAttributes applies the style carried by attrs to the cell at p.
func (s *Sized) SetAttributes(attrs *attributes.Attributes, p geometry.LocalPos) {
	s.SetStyle(StyleFrom(attrs), p)
}

// PlaceGlyph writes g at p and returns the position after it. It fails
// without writing when p is outside the node or g would overrun the row.
// A glyph that is inside the node but outside the clip is skipped over.
func (s *Sized) PlaceGlyph(g Glyph, p geometry.LocalPos) (geometry.LocalPos, bool) {
	if !s.inLocalBounds(p) || p.X+g.Width > s.LocalSize.Width {
		return p, false
	}
	pos := s.global(p)
	if s.writable(pos) {
		style := s.buf.Get(pos).Style
		s.buf.Set(pos, Cell{Text: g.Text, Width: g.Width, Style: style})
		for i := 1; i < g.Width; i++ {
			cont := geometry.NewPos(pos.X+i, pos.Y)
			if s.writable(cont) {
				s.buf.Set(cont, Cell{Style: style})
			}
		}
	}
	return geometry.NewLocalPos(p.X+g.Width, p.Y), true
}

// PlaceGlyphs writes glyphs left to right from p. It returns the position
// after the last glyph, or false as soon as one cannot be placed.
func (s *Sized) PlaceGlyphs(glyphs Glyphs, p geometry.LocalPos) (geometry.LocalPos, bool) {
	for _, g := range glyphs {
		next, ok := s.PlaceGlyph(g, p)
		if !ok {
			return p, false
		}
		p = next
	}
	return p, true
}

// Print places as much of text as fits on the row starting at p and returns
// the position after the last placed glyph.
func (s *Sized) Print(text string, style Style, p geometry.LocalPos) geometry.LocalPos {
	for _, g := range NewGlyphs(text) {
		start := p
		next, ok := s.PlaceGlyph(g, p)
		if !ok {
			break
		}
		for x := start.X; x < next.X; x++ {
			s.SetStyle(style, geometry.NewLocalPos(x, p.Y))
		}
		p = next
	}
	return p
}
