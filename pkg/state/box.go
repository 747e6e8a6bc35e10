package state

import "sync/atomic"

// ID identifies one state instance for as long as it lives.
type ID uint64

var nextID atomic.Uint64

// NextID allocates a fresh state identity.
func NextID() ID {
	return ID(nextID.Add(1))
}

// AnyState is the type-erased view of a component state.
type AnyState interface {
	// StateID returns the stable identity of this instance.
	StateID() ID
	// Any returns a pointer to the concrete state value.
	Any() any
}

// Box owns a state value of type S.
type Box[S any] struct {
	id    ID
	value S
}

// NewBox boxes value and assigns it a new ID.
func NewBox[S any](value S) *Box[S] {
	return &Box[S]{id: NextID(), value: value}
}

// StateID implements AnyState.
func (b *Box[S]) StateID() ID {
	return b.id
}

// Any implements AnyState. The result is always a *S.
func (b *Box[S]) Any() any {
	return &b.value
}

// Get returns a pointer to the boxed value.
func (b *Box[S]) Get() *S {
	return &b.value
}

// Downcast performs the checked conversion from an erased state to *S.
func Downcast[S any](st AnyState) (*S, bool) {
	if st == nil {
		return nil, false
	}
	ptr, ok := st.Any().(*S)
	return ptr, ok
}
