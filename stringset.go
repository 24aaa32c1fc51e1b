package wire

// StringSet is an insertion-ordered set of strings. Iteration order is the
// order members were first added, which is also the order they are encoded
// on the wire.
type StringSet struct {
	order []string
	index map[string]struct{}
}

// NewStringSet creates a set containing the given members, duplicates
// collapsed.
func NewStringSet(members ...string) *StringSet {
	ss := &StringSet{index: make(map[string]struct{}, len(members))}
	for _, m := range members {
		ss.Add(m)
	}
	return ss
}

// Add inserts v, reporting whether it was not already present.
func (s *StringSet) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Has reports whether v is a member.
func (s *StringSet) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of members.
func (s *StringSet) Len() int { return len(s.order) }

// Strings returns the members in iteration order. The slice is shared; do
// not modify it.
func (s *StringSet) Strings() []string { return s.order }

// Equal reports whether both sets have the same members, ignoring order.
func (s *StringSet) Equal(o *StringSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, m := range s.order {
		if !o.Has(m) {
			return false
		}
	}
	return true
}
