package attributes

// Storage maps node ids to their attributes.
type Storage struct {
	nodes map[NodeID]*Attributes
	empty *Attributes
}

// NewStorage creates an empty store.
func NewStorage() *Storage {
	return &Storage{
		nodes: make(map[NodeID]*Attributes),
		empty: New(),
	}
}

// Insert replaces the attributes of a node.
func (s *Storage) Insert(id NodeID, attrs *Attributes) {
	s.nodes[id] = attrs
}

// Get returns the attributes of a node. Nodes without attributes get a
// shared empty set, so callers never need a nil check.
func (s *Storage) Get(id NodeID) *Attributes {
	if s == nil {
		return nil
	}
	if attrs, ok := s.nodes[id]; ok && attrs != nil {
		return attrs
	}
	return s.empty
}

// Lookup returns the attributes of a node only if it has any.
func (s *Storage) Lookup(id NodeID) (*Attributes, bool) {
	attrs, ok := s.nodes[id]
	return attrs, ok && attrs != nil
}

// GetOrInsert returns the attributes of a node, creating an empty set if
// needed.
func (s *Storage) GetOrInsert(id NodeID) *Attributes {
	if attrs, ok := s.Lookup(id); ok {
		return attrs
	}
	attrs := New()
	s.nodes[id] = attrs
	return attrs
}

// Remove drops a node's attributes.
func (s *Storage) Remove(id NodeID) {
	delete(s.nodes, id)
}

// Len returns the number of nodes with attributes.
func (s *Storage) Len() int {
	return len(s.nodes)
}
