package state

import "testing"

func TestBox_IdentityAndDowncast(t *testing.T) {
	a := NewBox(int64(3))
	b := NewBox(int64(3))
	if a.StateID() == b.StateID() {
		t.Fatalf("expected distinct ids, both were %d", a.StateID())
	}

	ptr, ok := Downcast[int64](a)
	if !ok {
		t.Fatal("expected downcast to *int64 to succeed")
	}
	*ptr = 9
	if *a.Get() != 9 {
		t.Errorf("expected write through downcast pointer, got %d", *a.Get())
	}

	if _, ok := Downcast[string](a); ok {
		t.Error("expected downcast to *string to fail")
	}
	if _, ok := Downcast[int64](nil); ok {
		t.Error("expected downcast of nil state to fail")
	}
}

func TestValue_SharedFailsWhileExclusive(t *testing.T) {
	v := NewValue(1)
	u, ok := v.Exclusive()
	if !ok {
		t.Fatal("expected exclusive borrow")
	}
	if _, ok := v.Shared(); ok {
		t.Fatal("expected shared borrow to fail while exclusive is held")
	}
	u.Release()

	s, ok := v.Shared()
	if !ok {
		t.Fatal("expected shared borrow after release")
	}
	if s.Value() != 1 || s.Any() != 1 {
		t.Errorf("unexpected shared value %v", s.Any())
	}
	if _, ok := v.Exclusive(); ok {
		t.Error("expected exclusive borrow to fail while shared is held")
	}
	s.Release()
	s.Release()
	if v.SharedCount() != 0 {
		t.Errorf("expected double release to be a no-op, count=%d", v.SharedCount())
	}
}

func TestValue_NotifiesOnChange(t *testing.T) {
	v := NewValue("a")
	var seen []string
	unsubscribe := v.Subscribe(func(s string) { seen = append(seen, s) })

	v.Set("b")
	u, _ := v.Exclusive()
	u.Set("c")
	if len(seen) != 1 {
		t.Fatalf("expected notification deferred until release, got %v", seen)
	}
	u.Release()

	unsubscribe()
	v.Set("d")

	if len(seen) != 2 || seen[0] != "b" || seen[1] != "c" {
		t.Errorf("unexpected notifications %v", seen)
	}
}

func TestValue_SetPanicsWhileBorrowed(t *testing.T) {
	v := NewValue(0)
	s, _ := v.Shared()
	defer s.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected Set to panic while borrowed")
		}
	}()
	v.Set(1)
}

func TestStore(t *testing.T) {
	store := NewStore()
	box := NewBox("x")
	id := store.Insert(box)

	if got, ok := store.Get(id); !ok || got != AnyState(box) {
		t.Fatalf("expected to find inserted state")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 state, got %d", store.Len())
	}
	if _, ok := store.Remove(id); !ok {
		t.Error("expected remove to succeed")
	}
	if _, ok := store.Get(id); ok {
		t.Error("expected state to be gone")
	}
}
