// Package intern maps symbolic names to compact ids.
//
// Templates refer to event names, attribute keys and slot names by string. The
// runtime resolves those strings once and passes the resulting ID around instead.
package intern

// ID is the interned identity of a string. The zero ID is never assigned.
type ID uint32

// Strings is an append-only interning table. It is not safe for concurrent
// mutation; the runtime owns it on the driver goroutine.
type Strings struct {
	ids     map[string]ID
	strings []string
}

// New creates an empty table.
func New() *Strings {
	return &Strings{
		ids:     make(map[string]ID),
		strings: []string{""},
	}
}

// Insert returns the id for s, interning it if needed.
func (s *Strings) Insert(str string) ID {
	if id, ok := s.ids[str]; ok {
		return id
	}
	id := ID(len(s.strings))
	s.strings = append(s.strings, str)
	s.ids[str] = id
	return id
}

// Lookup returns the id for s without interning it.
func (s *Strings) Lookup(str string) (ID, bool) {
	if s == nil {
		return 0, false
	}
	id, ok := s.ids[str]
	return id, ok
}

// Get returns the string behind id.
func (s *Strings) Get(id ID) (string, bool) {
	if s == nil || id == 0 || int(id) >= len(s.strings) {
		return "", false
	}
	return s.strings[id], true
}

// Len returns the number of interned strings.
func (s *Strings) Len() int {
	return len(s.strings) - 1
}
