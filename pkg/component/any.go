package component

import (
	"time"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/events"
	"github.com/go-drift/weft/pkg/state"
)

// AnyComponent is the type-erased form of a Component. The state passed to
// each method must be the state registered with the component.
type AnyComponent interface {
	// AnyEvent forwards key and mouse events. Every other event is ignored.
	// The event is returned unchanged.
	AnyEvent(ev events.Event, st state.AnyState, ctx *UntypedContext) events.Event
	// AnyMessage delivers payload if it has the component's message type and
	// drops it otherwise.
	AnyMessage(payload any, st state.AnyState, ctx *UntypedContext)
	AnyTick(dt time.Duration, st state.AnyState, ctx *UntypedContext)
	AnyFocus(st state.AnyState, ctx *UntypedContext)
	AnyBlur(st state.AnyState, ctx *UntypedContext)
	AnyResize(st state.AnyState, ctx *UntypedContext)
	AnyReceive(name string, value any, st state.AnyState, ctx *UntypedContext)
	AcceptFocusAny() bool
}

// Erase wraps a typed component.
func Erase[S, M any](c Component[S, M]) AnyComponent {
	return &erased[S, M]{inner: c}
}

// Unwrap returns the typed component behind an AnyComponent created by Erase.
func Unwrap(c AnyComponent) (any, bool) {
	u, ok := c.(interface{ Inner() any })
	if !ok {
		return nil, false
	}
	return u.Inner(), true
}

type erased[S, M any] struct {
	inner Component[S, M]
}

func (e *erased[S, M]) Inner() any {
	return e.inner
}

func (e *erased[S, M]) state(op string, st state.AnyState) *S {
	if st == nil {
		errors.Violation(op, "component %T dispatched without state", e.inner)
	}
	s, ok := state.Downcast[S](st)
	if !ok {
		errors.Violation(op, "component %T expects state %T, got %T", e.inner, (*S)(nil), st.Any())
	}
	return s
}

func (e *erased[S, M]) AnyEvent(ev events.Event, st state.AnyState, ctx *UntypedContext) events.Event {
	s := e.state("dispatch event", st)
	c := &Context[S]{UntypedContext: ctx}
	switch ev := ev.(type) {
	case events.Key:
		e.inner.OnKey(ev, s, c)
	case events.Mouse:
		e.inner.OnMouse(ev, s, c)
	}
	return ev
}

func (e *erased[S, M]) AnyMessage(payload any, st state.AnyState, ctx *UntypedContext) {
	s := e.state("dispatch message", st)
	msg, ok := payload.(M)
	if !ok {
		return
	}
	e.inner.Message(msg, s, &Context[S]{UntypedContext: ctx})
}

func (e *erased[S, M]) AnyTick(dt time.Duration, st state.AnyState, ctx *UntypedContext) {
	e.inner.Tick(dt, e.state("dispatch tick", st), &Context[S]{UntypedContext: ctx})
}

func (e *erased[S, M]) AnyFocus(st state.AnyState, ctx *UntypedContext) {
	e.inner.OnFocus(e.state("dispatch focus", st), &Context[S]{UntypedContext: ctx})
}

func (e *erased[S, M]) AnyBlur(st state.AnyState, ctx *UntypedContext) {
	e.inner.OnBlur(e.state("dispatch blur", st), &Context[S]{UntypedContext: ctx})
}

func (e *erased[S, M]) AnyResize(st state.AnyState, ctx *UntypedContext) {
	e.inner.Resize(e.state("dispatch resize", st), &Context[S]{UntypedContext: ctx})
}

func (e *erased[S, M]) AnyReceive(name string, value any, st state.AnyState, ctx *UntypedContext) {
	e.inner.Receive(name, value, e.state("dispatch receive", st), &Context[S]{UntypedContext: ctx})
}

func (e *erased[S, M]) AcceptFocusAny() bool {
	return e.inner.AcceptFocus()
}
