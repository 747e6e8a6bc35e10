package component

import (
	"time"

	"github.com/go-drift/weft/pkg/events"
)

// Component is the behaviour of a component with state S accepting messages
// of type M. Embed Base to get no-op defaults.
type Component[S, M any] interface {
	OnFocus(state *S, ctx *Context[S])
	OnBlur(state *S, ctx *Context[S])
	OnKey(key events.Key, state *S, ctx *Context[S])
	OnMouse(mouse events.Mouse, state *S, ctx *Context[S])
	Tick(dt time.Duration, state *S, ctx *Context[S])
	Message(msg M, state *S, ctx *Context[S])
	Resize(state *S, ctx *Context[S])
	// Receive delivers a value a child published under a name this
	// component bound.
	Receive(name string, value any, state *S, ctx *Context[S])
	// AcceptFocus reports whether the focus manager may focus this component.
	AcceptFocus() bool
}

// Base implements every Component method as a no-op and accepts focus.
type Base[S, M any] struct{}

func (Base[S, M]) OnFocus(*S, *Context[S])               {}
func (Base[S, M]) OnBlur(*S, *Context[S])                {}
func (Base[S, M]) OnKey(events.Key, *S, *Context[S])     {}
func (Base[S, M]) OnMouse(events.Mouse, *S, *Context[S]) {}
func (Base[S, M]) Tick(time.Duration, *S, *Context[S])   {}
func (Base[S, M]) Message(M, *S, *Context[S])            {}
func (Base[S, M]) Resize(*S, *Context[S])                {}
func (Base[S, M]) Receive(string, any, *S, *Context[S])  {}
func (Base[S, M]) AcceptFocus() bool                     { return true }

// Empty is the state and message type of a component that has neither.
type Empty struct{}

// Unit is a component with no state and no behaviour. It refuses focus.
type Unit struct {
	Base[Empty, Empty]
}

// AcceptFocus implements Component.
func (Unit) AcceptFocus() bool { return false }
