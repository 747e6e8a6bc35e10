package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// NodeID identifies a widget node. Attributes are stored under the same id.
type NodeID = attributes.NodeID

// Widget is the behaviour of one kind of node.
type Widget interface {
	// Layout resolves the widget's size. Children must be laid out through
	// the cursor before they are positioned.
	Layout(children Children, constraints layout.Constraints, id NodeID, ctx *layout.LayoutCtx) geometry.Size

	// Position places the children relative to ctx.Pos.
	Position(children Children, id NodeID, attrs *attributes.Storage, ctx layout.PositionCtx)

	// Paint draws the widget's own content and its children.
	Paint(children Children, id NodeID, attrs *attributes.Storage, ctx *paint.Sized)
}

// Floater is implemented by widgets that do not contribute to their parent's
// size.
type Floater interface {
	Floats() bool
}

// InnerBounder is implemented by widgets whose content region differs from
// the region they cover.
type InnerBounder interface {
	InnerBounds(pos geometry.Pos, size geometry.Size) geometry.Region
}

func floats(w Widget) bool {
	f, ok := w.(Floater)
	return ok && f.Floats()
}

func innerBounds(w Widget, pos geometry.Pos, size geometry.Size) geometry.Region {
	if ib, ok := w.(InnerBounder); ok {
		return ib.InnerBounds(pos, size)
	}
	return geometry.RegionFrom(pos, size)
}
