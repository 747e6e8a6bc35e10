package component

import (
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/intern"
	"github.com/go-drift/weft/pkg/state"
)

// Parent identifies the component a child notifies.
type Parent struct {
	Component WidgetComponentID
	State     state.ID
}

// Accessor reads the published value out of a component state.
type Accessor interface {
	// Resolve returns a shared borrow of the value inside st. The caller
	// releases it.
	Resolve(st state.AnyState) state.SharedValue
}

// FieldAccessor returns an Accessor selecting a Value field of an S.
func FieldAccessor[S, V any](field func(*S) *state.Value[V]) Accessor {
	return fieldAccessor[S, V]{field: field}
}

type fieldAccessor[S, V any] struct {
	field func(*S) *state.Value[V]
}

func (a fieldAccessor[S, V]) Resolve(st state.AnyState) state.SharedValue {
	s, ok := state.Downcast[S](st)
	if !ok {
		errors.Violation("resolve associated event", "state %T is not %T", anyOf(st), (*S)(nil))
	}
	shared, ok := a.field(s).Shared()
	if !ok {
		errors.Violation("resolve associated event", "published value is exclusively borrowed")
	}
	return shared
}

func anyOf(st state.AnyState) any {
	if st == nil {
		return nil
	}
	return st.Any()
}

// AssociatedEvent is a queued notification from a child to its parent.
type AssociatedEvent struct {
	// State is the publishing component's state.
	State state.ID
	// Parent is the component that receives the value.
	Parent Parent
	// External is the name the parent bound the event to.
	External intern.ID
	// Accessor reads the value from the publisher's state.
	Accessor Accessor
}

// AssociatedEvents is a last-in first-out queue of associated events.
type AssociatedEvents struct {
	events []AssociatedEvent
}

// NewAssociatedEvents creates an empty queue.
func NewAssociatedEvents() *AssociatedEvents {
	return &AssociatedEvents{}
}

// Push queues ev.
func (a *AssociatedEvents) Push(ev AssociatedEvent) {
	a.events = append(a.events, ev)
}

// Next removes and returns the most recently pushed event.
func (a *AssociatedEvents) Next() (AssociatedEvent, bool) {
	n := len(a.events)
	if n == 0 {
		return AssociatedEvent{}, false
	}
	ev := a.events[n-1]
	a.events[n-1] = AssociatedEvent{}
	a.events = a.events[:n-1]
	return ev, true
}

// Len returns the number of queued events.
func (a *AssociatedEvents) Len() int {
	return len(a.events)
}
