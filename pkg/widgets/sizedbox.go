package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// SizedBox constrains its child to a specific width and/or height.
//
// When both Width and Height are set, SizedBox forces those exact dimensions
// (constrained by parent). When only one dimension is set, the other uses
// the child's size. A zero dimension is unset.
//
// Common uses:
//
//	// Vertical spacer in a vstack
//	&SizedBox{Height: 1}
//
//	// Fixed-width column
//	&SizedBox{Width: 20}
type SizedBox struct {
	Width  int
	Height int
}

// Layout implements Widget.
func (s *SizedBox) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	inner := constraints
	if s.Width > 0 {
		w := clampInt(s.Width, constraints.MinWidth, constraints.MaxWidth)
		inner.MinWidth, inner.MaxWidth = w, w
	}
	if s.Height > 0 {
		h := clampInt(s.Height, constraints.MinHeight, constraints.MaxHeight)
		inner.MinHeight, inner.MaxHeight = h, h
	}

	var size geometry.Size
	if child, ok := children.First(); ok {
		size = child.Layout(inner, ctx)
	}
	return inner.Constrain(size)
}

// Position implements Widget.
func (s *SizedBox) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
	children.PositionAll(ctx.Pos, attrs, ctx.Viewport)
}

// Paint implements Widget.
func (s *SizedBox) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	children.Paint(ctx, attrs)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
