package widgets

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/geometry"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/paint"
)

// Element is a node in the widget tree.
type Element struct {
	container *Container
	parent    *Element
	children  []*Element
	depth     int
	owner     *PipelineOwner
}

// NewElement creates a node wrapping w with the given children.
func NewElement(id NodeID, w Widget, children ...*Element) *Element {
	e := &Element{container: NewContainer(id, w)}
	for _, child := range children {
		e.Append(child)
	}
	return e
}

// Container returns the node's render state.
func (e *Element) Container() *Container { return e.container }

// ID returns the node id.
func (e *Element) ID() NodeID { return e.container.id }

// Widget returns the wrapped widget.
func (e *Element) Widget() Widget { return e.container.inner }

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Depth returns the distance from the root.
func (e *Element) Depth() int { return e.depth }

// Children returns a cursor over the direct children.
func (e *Element) Children() Children { return Children{elements: e.children} }

// Append adds child as the last child and dirties this node.
func (e *Element) Append(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	child.attach(e.owner, e.depth+1)
	e.children = append(e.children, child)
	e.MarkNeedsLayout()
}

// RemoveChild detaches child and dirties this node.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i:i], e.children[i+1:]...)
			child.parent = nil
			child.attach(nil, 0)
			e.MarkNeedsLayout()
			return
		}
	}
}

func (e *Element) attach(owner *PipelineOwner, depth int) {
	e.owner = owner
	e.depth = depth
	for _, c := range e.children {
		c.attach(owner, depth+1)
	}
}

// MarkNeedsLayout dirties this node and every ancestor, since a clean
// parent would otherwise return its cached size without reaching the node.
func (e *Element) MarkNeedsLayout() {
	for n := e; n != nil; n = n.parent {
		n.container.MarkNeedsLayout()
		if n.parent == nil && n.owner != nil {
			n.owner.ScheduleLayout(n)
		}
	}
}

// MarkNeedsPosition forces this node to be repositioned. Ancestors are
// marked too, or an unmoved parent would skip the position pass.
func (e *Element) MarkNeedsPosition() {
	for n := e; n != nil; n = n.parent {
		n.container.MarkNeedsPosition()
	}
	if e.owner != nil {
		e.owner.SchedulePaint()
	}
}

// Layout runs the layout pass on this node.
func (e *Element) Layout(constraints layout.Constraints, ctx *layout.LayoutCtx) geometry.Size {
	return e.container.Layout(e.Children(), constraints, ctx)
}

// Position runs the position pass on this node.
func (e *Element) Position(pos geometry.Pos, attrs *attributes.Storage, viewport layout.Viewport) {
	e.container.Position(e.Children(), pos, attrs, viewport)
}

// Paint runs the paint pass on this node.
func (e *Element) Paint(ctx paint.Unsized, attrs *attributes.Storage) {
	e.container.Paint(e.Children(), ctx, attrs)
}

// ReportedSize is the size this node contributes to its parent: zero for
// floating nodes, the resolved size otherwise.
func (e *Element) ReportedSize() geometry.Size {
	if e.container.Floats() {
		return geometry.Zero
	}
	return e.container.size
}

// Walk visits the subtree in depth-first pre-order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the node with the given id in the subtree.
func (e *Element) Find(id NodeID) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// MarkTreeNeedsLayout dirties every node in the subtree.
func (e *Element) MarkTreeNeedsLayout() {
	e.Walk(func(n *Element) bool {
		n.container.MarkNeedsLayout()
		return true
	})
	e.MarkNeedsLayout()
}

// Children is a cursor over the child elements of a node.
type Children struct {
	elements []*Element
}

// Len returns the number of children.
func (c Children) Len() int { return len(c.elements) }

// At returns the i-th child.
func (c Children) At(i int) *Element { return c.elements[i] }

// First returns the first child.
func (c Children) First() (*Element, bool) {
	if len(c.elements) == 0 {
		return nil, false
	}
	return c.elements[0], true
}

// Each calls fn for every child in order until it returns false.
func (c Children) Each(fn func(i int, child *Element) bool) {
	for i, child := range c.elements {
		if !fn(i, child) {
			return
		}
	}
}

// Layout lays out every child under constraints.
func (c Children) Layout(constraints layout.Constraints, ctx *layout.LayoutCtx) {
	for _, child := range c.elements {
		child.Layout(constraints, ctx)
	}
}

// PositionAll places every child at pos.
func (c Children) PositionAll(pos geometry.Pos, attrs *attributes.Storage, viewport layout.Viewport) {
	for _, child := range c.elements {
		child.Position(pos, attrs, viewport)
	}
}

// Paint paints every child through ctx.
func (c Children) Paint(ctx *paint.Sized, attrs *attributes.Storage) {
	unsized := ctx.ToUnsized()
	for _, child := range c.elements {
		child.Paint(unsized, attrs)
	}
}
