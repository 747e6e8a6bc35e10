package widgets

import (
	"fmt"

	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// AlignmentAttribute overrides the alignment of an Align node.
const AlignmentAttribute = "alignment"

// Alignment is where Align places its child.
type Alignment int

const (
	AlignTopLeft Alignment = iota
	AlignTop
	AlignTopRight
	AlignRight
	AlignBottomRight
	AlignBottom
	AlignBottomLeft
	AlignLeft
	AlignCentre
)

var alignmentNames = map[string]Alignment{
	"top-left":     AlignTopLeft,
	"top":          AlignTop,
	"top-right":    AlignTopRight,
	"right":        AlignRight,
	"bottom-right": AlignBottomRight,
	"bottom":       AlignBottom,
	"bottom-left":  AlignBottomLeft,
	"left":         AlignLeft,
	"centre":       AlignCentre,
	"center":       AlignCentre,
}

// ParseAlignment parses an alignment name such as "top-right" or "centre".
func ParseAlignment(s string) (Alignment, error) {
	if a, ok := alignmentNames[s]; ok {
		return a, nil
	}
	return AlignTopLeft, fmt.Errorf("invalid alignment %q", s)
}

// Align fills the space it is given and places its single child inside it.
type Align struct {
	Alignment Alignment

	child geometry.Region
}

func (a *Align) alignment(attrs *attributes.Attributes) Alignment {
	if s, ok := attrs.String(AlignmentAttribute); ok {
		if parsed, err := ParseAlignment(s); err == nil {
			return parsed
		}
	}
	return a.Alignment
}

// Layout implements Widget.
func (a *Align) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	var childSize geometry.Size
	if child, ok := children.First(); ok {
		childSize = child.Layout(constraints.Loosen(), ctx)
	}
	size := childSize
	if !constraints.HasUnboundedWidth() {
		size.Width = constraints.MaxWidth
	}
	if !constraints.HasUnboundedHeight() {
		size.Height = constraints.MaxHeight
	}
	return constraints.Constrain(size)
}

// Position implements Widget.
func (a *Align) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
	child, ok := children.First()
	if !ok {
		a.child = geometry.RegionFrom(ctx.Pos, geometry.Zero)
		return
	}
	childSize := child.Container().Size()
	free := geometry.NewSize(
		max(ctx.InnerSize.Width-childSize.Width, 0),
		max(ctx.InnerSize.Height-childSize.Height, 0),
	)

	var off geometry.Pos
	switch a.alignment(attrs.Get(id)) {
	case AlignTop:
		off = geometry.NewPos(free.Width/2, 0)
	case AlignTopRight:
		off = geometry.NewPos(free.Width, 0)
	case AlignRight:
		off = geometry.NewPos(free.Width, free.Height/2)
	case AlignBottomRight:
		off = geometry.NewPos(free.Width, free.Height)
	case AlignBottom:
		off = geometry.NewPos(free.Width/2, free.Height)
	case AlignBottomLeft:
		off = geometry.NewPos(0, free.Height)
	case AlignLeft:
		off = geometry.NewPos(0, free.Height/2)
	case AlignCentre:
		off = geometry.NewPos(free.Width/2, free.Height/2)
	}

	pos := ctx.Pos.Add(off)
	child.Position(pos, attrs, ctx.Viewport)
	a.child = geometry.RegionFrom(pos, childSize)
}

// InnerBounds implements InnerBounder: the region occupied by the child.
func (a *Align) InnerBounds(pos geometry.Pos, size geometry.Size) geometry.Region {
	return a.child
}

// Paint implements Widget.
func (a *Align) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	children.Paint(ctx, attrs)
}
