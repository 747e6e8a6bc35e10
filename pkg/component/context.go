package component

import (
	"github.com/go-drift/weft/pkg/attributes"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/intern"
	"github.com/go-drift/weft/pkg/layout"
	"github.com/go-drift/weft/pkg/state"
	"github.com/go-drift/weft/pkg/widgets"
)

// AssocFunction binds an event name a component publishes (Internal) to
// the name its parent handles it under (External).
type AssocFunction struct {
	Internal intern.ID
	External intern.ID
}

// UntypedContext is everything a dispatch call can reach besides the
// component's own state.
type UntypedContext struct {
	Emitter        *Emitter
	Viewport       layout.Viewport
	AssocEvents    *AssociatedEvents
	StateID        state.ID
	Parent         *Parent
	Strings        *intern.Strings
	AssocFunctions []AssocFunction
	Elements       Elements
}

// Context is the typed view of an UntypedContext for a component with state S.
type Context[S any] struct {
	*UntypedContext
}

// Publish notifies the parent with the value selected by field. It does
// nothing when name was never interned, when the parent did not bind it, or
// when there is no parent.
//
// The value is read after the current dispatch returns. Reading it panics if
// it is exclusively borrowed at that point.
func Publish[S, V any](ctx *Context[S], name string, field func(*S) *state.Value[V]) {
	internal, ok := ctx.Strings.Lookup(name)
	if !ok {
		return
	}
	if ctx.Parent == nil {
		return
	}
	var external intern.ID
	bound := false
	for _, fn := range ctx.AssocFunctions {
		if fn.Internal == internal {
			external, bound = fn.External, true
			break
		}
	}
	if !bound {
		return
	}
	ctx.AssocEvents.Push(AssociatedEvent{
		State:    ctx.StateID,
		Parent:   *ctx.Parent,
		External: external,
		Accessor: FieldAccessor(field),
	})
}

// Send emits value to a component. The runtime keeps its channel open for
// as long as components are dispatched, so a closed channel panics.
func Send[S, M any](ctx *Context[S], to ID[M], value M) {
	if err := Emit(ctx.Emitter, to, value); err != nil {
		errors.Violation("send message", "%v to %v", err, to.Widget())
	}
}

// Elements gives a component access to the widget subtree it renders.
type Elements struct {
	Root       *widgets.Element
	Attributes *attributes.Storage
}

// ByID finds a node in the subtree.
func (e Elements) ByID(id widgets.NodeID) *widgets.Element {
	if e.Root == nil {
		return nil
	}
	return e.Root.Find(id)
}

// Attrs returns the attributes of node id.
func (e Elements) Attrs(id widgets.NodeID) *attributes.Attributes {
	return e.Attributes.Get(id)
}

// Set changes an attribute of a node in the subtree and marks it for
// relayout. It reports false when the node is not in the subtree.
func (e Elements) Set(id widgets.NodeID, key string, value any) bool {
	el := e.ByID(id)
	if el == nil || e.Attributes == nil {
		return false
	}
	e.Attributes.GetOrInsert(id).Set(key, value)
	el.MarkNeedsLayout()
	return true
}

// Query returns the nodes in the subtree whose string attribute key equals
// value, in depth-first order.
func (e Elements) Query(key, value string) []*widgets.Element {
	if e.Root == nil || e.Attributes == nil {
		return nil
	}
	var out []*widgets.Element
	e.Root.Walk(func(el *widgets.Element) bool {
		if s, ok := e.Attributes.Get(el.ID()).String(key); ok && s == value {
			out = append(out, el)
		}
		return true
	})
	return out
}
