package state

// Store holds the states of mounted components, keyed by their ID.
type Store struct {
	states map[ID]AnyState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{states: make(map[ID]AnyState)}
}

// Insert adds st under its own ID and returns that ID.
func (s *Store) Insert(st AnyState) ID {
	id := st.StateID()
	s.states[id] = st
	return id
}

// Get returns the state with the given ID.
func (s *Store) Get(id ID) (AnyState, bool) {
	st, ok := s.states[id]
	return st, ok
}

// Remove deletes and returns the state with the given ID.
func (s *Store) Remove(id ID) (AnyState, bool) {
	st, ok := s.states[id]
	if ok {
		delete(s.states, id)
	}
	return st, ok
}

// Len returns the number of stored states.
func (s *Store) Len() int {
	return len(s.states)
}
