package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// DefaultExpandFactor is the factor of an Expand with no factor set.
const DefaultExpandFactor = 1

// Expand takes all the space its constraints allow along Axis, or along both
// axes when Axis is unset. Inside a Stack, sibling Expands split the space
// left over by their factors. It has at most one child.
type Expand struct {
	Factor int
	Axis   Axis
}

func (e *Expand) factor() int {
	if e.Factor < 1 {
		return DefaultExpandFactor
	}
	return e.Factor
}

// Layout implements Widget.
func (e *Expand) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	var size geometry.Size
	if child, ok := children.First(); ok {
		size = child.Layout(constraints, ctx)
	}

	expandWidth := e.Axis != AxisVertical && !constraints.HasUnboundedWidth()
	expandHeight := e.Axis != AxisHorizontal && !constraints.HasUnboundedHeight()
	if expandWidth {
		size.Width = constraints.MaxWidth
	}
	if expandHeight {
		size.Height = constraints.MaxHeight
	}
	return constraints.Constrain(size)
}

// Position implements Widget.
func (e *Expand) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
	if child, ok := children.First(); ok {
		child.Position(ctx.Pos, attrs, ctx.Viewport)
	}
}

// Paint implements Widget.
func (e *Expand) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	children.Paint(ctx, attrs)
}
