// Package geometry provides the integer cell geometry shared by layout and paint.
package geometry

// Size is a width and height measured in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Zero is the empty size reported by floating widgets.
var Zero = Size{}

// NewSize constructs a Size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Pos is an absolute screen position. Coordinates may be negative
// when a node is scrolled or floated off screen.
type Pos struct {
	X int
	Y int
}

// NewPos constructs a Pos.
func NewPos(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add offsets the position.
func (p Pos) Add(other Pos) Pos {
	return Pos{X: p.X + other.X, Y: p.Y + other.Y}
}

// LocalPos is a position relative to the top-left corner of a node.
type LocalPos struct {
	X int
	Y int
}

// NewLocalPos constructs a LocalPos.
func NewLocalPos(x, y int) LocalPos {
	return LocalPos{X: x, Y: y}
}

// Region is a half-open rectangle: From is inclusive, To is exclusive.
type Region struct {
	From Pos
	To   Pos
}

// RegionFrom builds the region covered by a node of the given size at pos.
func RegionFrom(pos Pos, size Size) Region {
	return Region{
		From: pos,
		To:   Pos{X: pos.X + size.Width, Y: pos.Y + size.Height},
	}
}

// Width returns the width of the region.
func (r Region) Width() int {
	return r.To.X - r.From.X
}

// Height returns the height of the region.
func (r Region) Height() int {
	return r.To.Y - r.From.Y
}

// IsEmpty reports whether the region covers no cells.
func (r Region) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Pos) bool {
	return p.X >= r.From.X && p.X < r.To.X && p.Y >= r.From.Y && p.Y < r.To.Y
}

// Intersect returns the overlap of two regions. The result is empty
// when they do not overlap.
func (r Region) Intersect(other Region) Region {
	out := Region{
		From: Pos{X: max(r.From.X, other.From.X), Y: max(r.From.Y, other.From.Y)},
		To:   Pos{X: min(r.To.X, other.To.X), Y: min(r.To.Y, other.To.Y)},
	}
	if out.IsEmpty() {
		return Region{From: out.From, To: out.From}
	}
	return out
}
