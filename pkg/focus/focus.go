// Package focus tracks which component receives input events.
package focus

// Target is anything that can hold focus.
type Target interface {
	AcceptFocus() bool
}

// Manager keeps an ordered list of targets and the index of the focused one.
// Traversal wraps around and skips targets that refuse focus.
type Manager[T comparable] struct {
	targets []T
	current int

	// OnChange is called after focus moves. Either side may be the zero
	// value when nothing was or is focused.
	OnChange func(old, new T)
}

// NewManager creates a manager with no targets.
func NewManager[T comparable]() *Manager[T] {
	return &Manager[T]{current: -1}
}

// Add appends a target to the traversal order.
func (m *Manager[T]) Add(t T) {
	m.targets = append(m.targets, t)
}

// Remove drops a target. If it held focus, focus is cleared.
func (m *Manager[T]) Remove(t T) {
	for i, x := range m.targets {
		if x != t {
			continue
		}
		if i == m.current {
			m.setIndex(-1)
		}
		m.targets = append(m.targets[:i], m.targets[i+1:]...)
		if m.current > i {
			m.current--
		}
		return
	}
}

// Len returns the number of targets.
func (m *Manager[T]) Len() int { return len(m.targets) }

// Current returns the focused target.
func (m *Manager[T]) Current() (T, bool) {
	if m.current < 0 {
		var zero T
		return zero, false
	}
	return m.targets[m.current], true
}

// Set focuses t. It returns false if t is unknown or refuses focus.
func (m *Manager[T]) Set(t T) bool {
	for i, x := range m.targets {
		if x == t {
			if !accepts(x) {
				return false
			}
			m.setIndex(i)
			return true
		}
	}
	return false
}

// Clear removes focus.
func (m *Manager[T]) Clear() {
	m.setIndex(-1)
}

// Next moves focus forward.
func (m *Manager[T]) Next() bool { return m.move(1) }

// Prev moves focus backward.
func (m *Manager[T]) Prev() bool { return m.move(-1) }

func (m *Manager[T]) move(delta int) bool {
	count := len(m.targets)
	if count == 0 {
		return false
	}
	start := m.current
	if start < 0 && delta < 0 {
		start = count
	}
	for step := 1; step <= count; step++ {
		next := wrapIndex(start+delta*step, count)
		if accepts(m.targets[next]) {
			m.setIndex(next)
			return true
		}
	}
	return false
}

func (m *Manager[T]) setIndex(i int) {
	if i == m.current {
		return
	}
	old, _ := m.Current()
	m.current = i
	if m.OnChange != nil {
		now, _ := m.Current()
		m.OnChange(old, now)
	}
}

func accepts(t any) bool {
	if f, ok := t.(Target); ok {
		return f.AcceptFocus()
	}
	return false
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
