package state

// SharedValue is a type-erased shared borrow.
type SharedValue interface {
	// Any returns the borrowed value.
	Any() any
	// Release ends the borrow. Calling it more than once is a no-op.
	Release()
}

// Value holds a T and tracks outstanding borrows of it.
type Value[T any] struct {
	id        ID
	value     T
	shared    int
	exclusive bool
	listeners map[int]func(T)
	nextKey   int
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{id: NextID(), value: initial}
}

// ID returns the identity of this value.
func (v *Value[T]) ID() ID {
	return v.id
}

// Get returns a copy of the current value. It panics while an exclusive
// borrow is outstanding.
func (v *Value[T]) Get() T {
	if v.exclusive {
		panic("state: value is exclusively borrowed")
	}
	return v.value
}

// Set replaces the value and notifies listeners. It panics while any
// borrow is outstanding.
func (v *Value[T]) Set(value T) {
	if v.exclusive || v.shared > 0 {
		panic("state: value is borrowed")
	}
	v.value = value
	v.notify()
}

// IsExclusive reports whether an exclusive borrow is outstanding.
func (v *Value[T]) IsExclusive() bool {
	return v.exclusive
}

// SharedCount returns the number of outstanding shared borrows.
func (v *Value[T]) SharedCount() int {
	return v.shared
}

// Shared takes a shared borrow. It fails while an exclusive borrow is
// outstanding.
func (v *Value[T]) Shared() (*Shared[T], bool) {
	if v.exclusive {
		return nil, false
	}
	v.shared++
	return &Shared[T]{v: v}, true
}

// Exclusive takes the exclusive borrow. It fails while any other borrow is
// outstanding.
func (v *Value[T]) Exclusive() (*Unique[T], bool) {
	if v.exclusive || v.shared > 0 {
		return nil, false
	}
	v.exclusive = true
	return &Unique[T]{v: v}, true
}

// Subscribe registers fn to be called with the new value after every change.
// The returned function removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if v.listeners == nil {
		v.listeners = make(map[int]func(T))
	}
	key := v.nextKey
	v.nextKey++
	v.listeners[key] = fn
	return func() {
		delete(v.listeners, key)
	}
}

func (v *Value[T]) notify() {
	for _, fn := range v.listeners {
		fn(v.value)
	}
}

// Shared is a read-only borrow of a Value.
type Shared[T any] struct {
	v        *Value[T]
	released bool
}

// Value returns the borrowed value.
func (s *Shared[T]) Value() T {
	return s.v.value
}

// Any implements SharedValue.
func (s *Shared[T]) Any() any {
	return s.v.value
}

// Release implements SharedValue.
func (s *Shared[T]) Release() {
	if s.released {
		return
	}
	s.released = true
	s.v.shared--
}

// Unique is the exclusive borrow of a Value.
type Unique[T any] struct {
	v        *Value[T]
	changed  bool
	released bool
}

// Get returns the current value.
func (u *Unique[T]) Get() T {
	return u.v.value
}

// Set writes through the borrow. Listeners are notified on Release.
func (u *Unique[T]) Set(value T) {
	u.v.value = value
	u.changed = true
}

// Release ends the borrow and notifies listeners if the value changed.
func (u *Unique[T]) Release() {
	if u.released {
		return
	}
	u.released = true
	u.v.exclusive = false
	if u.changed {
		u.v.notify()
	}
}
