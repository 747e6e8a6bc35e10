package component

import (
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/state"
)

type slot interface {
	kind() Kind
}

// instanceSlot holds a fixed component and state. Both are nil while the
// instance is checked out.
type instanceSlot struct {
	component AnyComponent
	state     state.AnyState
}

func (*instanceSlot) kind() Kind { return KindInstance }

func (s *instanceSlot) hollow() bool {
	return s.component == nil && s.state == nil
}

// prototypeSlot manufactures a fresh component and state on every checkout.
type prototypeSlot struct {
	newComponent func() AnyComponent
	newState     func() state.AnyState
}

func (*prototypeSlot) kind() Kind { return KindPrototype }

// Checkout is a component taken out of the registry for dispatch.
type Checkout struct {
	Kind      Kind
	Component AnyComponent
	State     state.AnyState
}

// Registry owns the registered components.
type Registry struct {
	slots []slot
	next  WidgetComponentID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reserve allocates an id for a component about to be registered. Ids are
// dense and never handed out twice.
func (r *Registry) Reserve() WidgetComponentID {
	id := r.next
	r.next++
	return id
}

func (r *Registry) insert(op string, id WidgetComponentID, s slot) {
	if id < 0 {
		errors.Violation(op, "invalid id %v", id)
	}
	for int(id) >= len(r.slots) {
		r.slots = append(r.slots, nil)
	}
	if r.slots[id] != nil {
		errors.Violation(op, "%v is already registered", id)
	}
	r.slots[id] = s
	if id >= r.next {
		r.next = id + 1
	}
}

func (r *Registry) lookup(op string, id WidgetComponentID) slot {
	if id < 0 || int(id) >= len(r.slots) || r.slots[id] == nil {
		errors.Violation(op, "%v is not registered", id)
	}
	return r.slots[id]
}

// Register adds an instance from an already erased component and state.
func (r *Registry) Register(id WidgetComponentID, c AnyComponent, st state.AnyState) {
	if c == nil || st == nil {
		errors.Violation("register component", "%v registered without component or state", id)
	}
	r.insert("register component", id, &instanceSlot{component: c, state: st})
}

// RegisterPrototype adds a prototype from erased factories.
func (r *Registry) RegisterPrototype(id WidgetComponentID, newComponent func() AnyComponent, newState func() state.AnyState) {
	r.insert("register prototype", id, &prototypeSlot{newComponent: newComponent, newState: newState})
}

// AddComponent registers a fixed instance of c with initial state.
func AddComponent[S, M any](r *Registry, id WidgetComponentID, c Component[S, M], initial S) {
	r.Register(id, Erase(c), state.NewBox(initial))
}

// AddPrototype registers factories invoked on every checkout.
func AddPrototype[S, M any](r *Registry, id WidgetComponentID, newComponent func() Component[S, M], newState func() S) {
	r.RegisterPrototype(id,
		func() AnyComponent { return Erase(newComponent()) },
		func() state.AnyState { return state.NewBox(newState()) },
	)
}

// Checkout takes the component with the given id out for dispatch. An
// instance slot is left hollow until Checkin; checking out a hollow slot
// reports false. A prototype slot produces a new pair and stays as is.
//
// Checkout panics if id is not registered.
func (r *Registry) Checkout(id WidgetComponentID) (Checkout, bool) {
	switch s := r.lookup("checkout", id).(type) {
	case *instanceSlot:
		if s.hollow() {
			return Checkout{}, false
		}
		out := Checkout{Kind: KindInstance, Component: s.component, State: s.state}
		s.component, s.state = nil, nil
		return out, true
	case *prototypeSlot:
		return Checkout{
			Kind:      KindPrototype,
			Component: s.newComponent(),
			State:     s.newState(),
		}, true
	}
	panic("unreachable")
}

// Checkin returns a checked out instance to its slot.
//
// Checkin panics if id is not registered, is a prototype, or is not checked
// out.
func (r *Registry) Checkin(id WidgetComponentID, c AnyComponent, st state.AnyState) {
	switch s := r.lookup("checkin", id).(type) {
	case *instanceSlot:
		if !s.hollow() {
			errors.Violation("checkin", "%v is not checked out", id)
		}
		if c == nil || st == nil {
			errors.Violation("checkin", "%v returned without component or state", id)
		}
		s.component, s.state = c, st
	case *prototypeSlot:
		errors.Violation("checkin", "%v is a prototype", id)
	}
}

// Kind returns the slot kind of id.
func (r *Registry) Kind(id WidgetComponentID) (Kind, bool) {
	if id < 0 || int(id) >= len(r.slots) || r.slots[id] == nil {
		return 0, false
	}
	return r.slots[id].kind(), true
}

// CheckedOut reports whether the instance with the given id is checked out.
func (r *Registry) CheckedOut(id WidgetComponentID) bool {
	if id < 0 || int(id) >= len(r.slots) {
		return false
	}
	s, ok := r.slots[id].(*instanceSlot)
	return ok && s.hollow()
}

// Remove deletes a slot. Its id is not reused.
func (r *Registry) Remove(id WidgetComponentID) {
	if id >= 0 && int(id) < len(r.slots) {
		r.slots[id] = nil
	}
}

// Len returns the number of registered slots.
func (r *Registry) Len() int {
	n := 0
	for _, s := range r.slots {
		if s != nil {
			n++
		}
	}
	return n
}
