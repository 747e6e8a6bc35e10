package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// FillAttribute is the attribute whose text is repeated across a node.
const FillAttribute = "fill"

// Container holds the render state of one node.
type Container struct {
	inner         Widget
	id            NodeID
	size          geometry.Size
	pos           geometry.Pos
	innerBounds   geometry.Region
	constraints   layout.Constraints
	needsLayout   bool
	needsPosition bool
}

// NewContainer wraps w. A new container needs layout and position.
func NewContainer(id NodeID, w Widget) *Container {
	return &Container{
		inner:         w,
		id:            id,
		needsLayout:   true,
		needsPosition: true,
	}
}

// ID returns the node id.
func (c *Container) ID() NodeID { return c.id }

// Widget returns the wrapped widget.
func (c *Container) Widget() Widget { return c.inner }

// Size returns the size resolved by the last layout. For floating widgets
// this is the real size, not the zero size reported to the parent.
func (c *Container) Size() geometry.Size { return c.size }

// Pos returns the position from the last position pass.
func (c *Container) Pos() geometry.Pos { return c.pos }

// InnerBounds returns the content region from the last position pass.
func (c *Container) InnerBounds() geometry.Region { return c.innerBounds }

// NeedsLayout reports whether the next layout will consult the widget.
func (c *Container) NeedsLayout() bool { return c.needsLayout }

// NeedsPosition reports whether the node must be repositioned.
func (c *Container) NeedsPosition() bool { return c.needsPosition }

// Floats reports whether the wrapped widget floats.
func (c *Container) Floats() bool { return floats(c.inner) }

// MarkNeedsLayout dirties the node. It also needs repositioning afterwards.
func (c *Container) MarkNeedsLayout() {
	c.needsLayout = true
	c.needsPosition = true
}

// MarkNeedsPosition forces the next position pass to run.
func (c *Container) MarkNeedsPosition() {
	c.needsPosition = true
}

// Layout resolves the node's size and returns the size its parent should
// account for. Constraints that differ from the previous layout dirty the
// node.
func (c *Container) Layout(children Children, constraints layout.Constraints, ctx *layout.LayoutCtx) geometry.Size {
	if !c.needsLayout && constraints == c.constraints {
		if c.Floats() {
			return geometry.Zero
		}
		return c.size
	}
	c.needsLayout = false
	c.needsPosition = true
	c.constraints = constraints

	c.size = c.inner.Layout(children, constraints, c.id, ctx)
	if c.Floats() {
		return geometry.Zero
	}
	return c.size
}

// Position places the node at pos.
func (c *Container) Position(children Children, pos geometry.Pos, attrs *attributes.Storage, viewport layout.Viewport) {
	if !c.needsPosition && pos == c.pos {
		return
	}
	c.needsPosition = false
	c.pos = pos

	ctx := layout.PositionCtx{
		InnerSize: c.size,
		Pos:       pos,
		Viewport:  viewport,
	}
	c.inner.Position(children, c.id, attrs, ctx)
	c.innerBounds = innerBounds(c.inner, c.pos, c.size)
}

// Paint draws the node. It does nothing unless the node is laid out and
// positioned.
func (c *Container) Paint(children Children, ctx paint.Unsized, attrs *attributes.Storage) {
	if c.needsLayout || c.needsPosition {
		return
	}

	sized := ctx.Sized(c.size, c.pos)
	sized.SetClipRegion(sized.CreateRegion())

	nodeAttrs := attrs.Get(c.id)
	style := paint.StyleFrom(nodeAttrs)
	for y := 0; y < c.size.Height; y++ {
		for x := 0; x < c.size.Width; x++ {
			sized.SetStyle(style, geometry.NewLocalPos(x, y))
		}
	}

	if fill := nodeAttrs.Strings(FillAttribute); len(fill) > 0 {
		paintFill(sized, fill)
	}

	c.inner.Paint(children, c.id, attrs, sized)
}

// paintFill repeats the fill values across every row. A row ends as soon as
// the consumed width reaches the row width or a glyph no longer fits.
func paintFill(ctx *paint.Sized, fill []string) {
	segments := make([]paint.Glyphs, 0, len(fill))
	for _, s := range fill {
		if g := paint.NewGlyphs(s); len(g) > 0 {
			segments = append(segments, g)
		}
	}
	if len(segments) == 0 {
		return
	}

	width := ctx.LocalSize.Width
	for y := 0; y < ctx.LocalSize.Height; y++ {
		used := 0
	row:
		for {
			for _, glyphs := range segments {
				next, ok := ctx.PlaceGlyphs(glyphs, geometry.NewLocalPos(used, y))
				if !ok {
					break row
				}
				used = next.X
				if used >= width {
					break row
				}
			}
		}
	}
}
