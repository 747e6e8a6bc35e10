package layout

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
)

// LayoutCtx is shared by every node during a layout pass.
type LayoutCtx struct {
	Viewport   Viewport
	Attributes *attributes.Storage
}

// NewLayoutCtx creates a layout context.
func NewLayoutCtx(viewport Viewport, attrs *attributes.Storage) *LayoutCtx {
	return &LayoutCtx{Viewport: viewport, Attributes: attrs}
}

// Attrs returns the attributes of node id.
func (c *LayoutCtx) Attrs(id attributes.NodeID) *attributes.Attributes {
	return c.Attributes.Get(id)
}

// PositionCtx is passed to a widget when it is positioned.
type PositionCtx struct {
	// InnerSize is the size the node resolved during layout.
	InnerSize geometry.Size
	// Pos is the node's absolute position.
	Pos      geometry.Pos
	Viewport Viewport
}

// Region returns the region the node covers.
func (c PositionCtx) Region() geometry.Region {
	return geometry.RegionFrom(c.Pos, c.InnerSize)
}
