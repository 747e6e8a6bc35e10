// Package state provides the state primitives components are built on.
//
// A component's state is any Go value S. The registry stores it behind the
// AnyState interface inside a Box[S], which gives it a stable ID and a checked
// downcast back to *S.
//
// Fields that other components may read while a dispatch is running are held
// in a Value[T]. A Value tracks borrows: any number of shared borrows, or one
// exclusive borrow. Taking a shared borrow while an exclusive one is
// outstanding fails, which is how the runtime detects that a deferred
// cross-component read would observe a value mid-mutation.
//
//	type counterState struct {
//	    count *state.Value[int]
//	}
//
//	st := counterState{count: state.NewValue(0)}
//	if u, ok := st.count.Exclusive(); ok {
//	    u.Set(u.Get() + 1)
//	    u.Release()
//	}
//
// None of the types in this package are safe for concurrent use. They are
// owned by the runtime's driver goroutine.
package state
