package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// Float lays out its child like any other node but reports no size to its
// parent, so it overlays the siblings that follow it. The x and y
// attributes offset the children from the node's position.
type Float struct{}

// Floats implements Floater.
func (Float) Floats() bool { return true }

// Layout implements Widget.
func (Float) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	var size geometry.Size
	children.Each(func(_ int, child *Element) bool {
		s := child.Layout(constraints.Loosen(), ctx)
		size.Width = max(size.Width, s.Width)
		size.Height = max(size.Height, s.Height)
		return true
	})
	return constraints.Constrain(size)
}

// Position implements Widget.
func (Float) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
	a := attrs.Get(id)
	x, _ := a.Int("x")
	y, _ := a.Int("y")
	children.PositionAll(ctx.Pos.Add(geometry.NewPos(x, y)), attrs, ctx.Viewport)
}

// Paint implements Widget.
func (Float) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	children.Paint(ctx, attrs)
}
