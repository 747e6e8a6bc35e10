package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// Padding adds empty space around its child.
//
// The child is constrained to the remaining space after padding is applied.
// Without a child, Padding is an empty box of the padding size. The padding
// attribute sets every side; top, right, bottom and left override single
// sides.
type Padding struct {
	Padding layout.EdgeInsets

	current layout.EdgeInsets
}

var paddingKeys = []string{"padding", "top", "right", "bottom", "left"}

// PaddingFrom reads the padding attributes. The second result is false when
// none is set.
func PaddingFrom(attrs *attributes.Attributes) (layout.EdgeInsets, bool) {
	var e layout.EdgeInsets
	found := false
	if n, ok := attrs.Int("padding"); ok {
		e = layout.EdgeInsetsAll(n)
		found = true
	}
	sides := []*int{&e.Top, &e.Right, &e.Bottom, &e.Left}
	for i, key := range paddingKeys[1:] {
		if n, ok := attrs.Int(key); ok {
			*sides[i] = max(n, 0)
			found = true
		}
	}
	e.Top, e.Right, e.Bottom, e.Left = max(e.Top, 0), max(e.Right, 0), max(e.Bottom, 0), max(e.Left, 0)
	return e, found
}

// Layout implements Widget.
func (p *Padding) Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size {
	p.current = p.Padding
	if e, ok := PaddingFrom(ctx.Attrs(id)); ok {
		p.current = e
	}
	pad := p.current

	child, ok := children.First()
	if !ok {
		return constraints.Constrain(geometry.NewSize(pad.Horizontal(), pad.Vertical()))
	}
	childSize := child.Layout(constraints.Deflate(pad), ctx)
	return constraints.Constrain(geometry.NewSize(
		childSize.Width+pad.Horizontal(),
		childSize.Height+pad.Vertical(),
	))
}

// Position implements Widget.
func (p *Padding) Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx) {
	if child, ok := children.First(); ok {
		child.Position(ctx.Pos.Add(geometry.NewPos(p.current.Left, p.current.Top)), attrs, ctx.Viewport)
	}
}

// InnerBounds implements InnerBounder: the node region minus the padding.
func (p *Padding) InnerBounds(pos geometry.Pos, size geometry.Size) geometry.Region {
	from := pos.Add(geometry.NewPos(p.current.Left, p.current.Top))
	inner := geometry.NewSize(
		max(size.Width-p.current.Horizontal(), 0),
		max(size.Height-p.current.Vertical(), 0),
	)
	return geometry.RegionFrom(from, inner)
}

// Paint implements Widget.
func (p *Padding) Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized) {
	children.Paint(ctx, attrs)
}
