package focus

import "testing"

type target struct {
	name   string
	accept bool
}

func (t *target) AcceptFocus() bool { return t.accept }

func newTargets(accept ...bool) (*Manager[*target], []*target) {
	m := NewManager[*target]()
	var ts []*target
	for i, a := range accept {
		t := &target{name: string(rune('a' + i)), accept: a}
		ts = append(ts, t)
		m.Add(t)
	}
	return m, ts
}

func TestManager_NextSkipsRefusingTargets(t *testing.T) {
	m, ts := newTargets(true, false, true)

	var order []string
	for range 4 {
		if !m.Next() {
			t.Fatal("expected Next to succeed")
		}
		cur, _ := m.Current()
		order = append(order, cur.name)
	}
	want := []string{"a", "c", "a", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
	if m.Set(ts[1]) {
		t.Error("expected Set on a refusing target to fail")
	}
}

func TestManager_PrevFromNothingStartsAtEnd(t *testing.T) {
	m, _ := newTargets(true, true, true)
	m.Prev()
	if cur, _ := m.Current(); cur.name != "c" {
		t.Errorf("expected c, got %s", cur.name)
	}
	m.Prev()
	if cur, _ := m.Current(); cur.name != "b" {
		t.Errorf("expected b, got %s", cur.name)
	}
}

func TestManager_NoAcceptingTargets(t *testing.T) {
	m, _ := newTargets(false, false)
	if m.Next() {
		t.Error("expected Next to fail")
	}
	if _, ok := m.Current(); ok {
		t.Error("expected no focus")
	}
	empty := NewManager[*target]()
	if empty.Prev() {
		t.Error("expected Prev on empty manager to fail")
	}
}

func TestManager_OnChangeAndRemove(t *testing.T) {
	m, ts := newTargets(true, true, true)
	var changes [][2]string
	m.OnChange = func(old, now *target) {
		name := func(t *target) string {
			if t == nil {
				return "-"
			}
			return t.name
		}
		changes = append(changes, [2]string{name(old), name(now)})
	}

	m.Set(ts[2])
	m.Set(ts[2])
	m.Remove(ts[0])
	if cur, _ := m.Current(); cur != ts[2] {
		t.Errorf("expected focus to stay on c after removing a, got %v", cur)
	}
	m.Remove(ts[2])
	if _, ok := m.Current(); ok {
		t.Error("expected focus cleared after removing the focused target")
	}
	m.Next()
	m.Clear()

	want := [][2]string{{"-", "c"}, {"c", "-"}, {"-", "b"}, {"b", "-"}}
	if len(changes) != len(want) {
		t.Fatalf("expected %v, got %v", want, changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d: expected %v, got %v", i, want[i], changes[i])
		}
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 target, got %d", m.Len())
	}
}
