package utils

// MapSet is a set that remembers the order in which keys were first added.
type MapSet[K comparable] struct {
	m    map[K]struct{}
	keys []K
}

func NewMapSet[K comparable]() *MapSet[K] {
	return &MapSet[K]{
		m: make(map[K]struct{}),
	}
}

// Add inserts val and reports whether it was not already present.
func (s *MapSet[K]) Add(val K) bool {
	if s.Contains(val) {
		return false
	}
	s.m[val] = struct{}{}
	s.keys = append(s.keys, val)
	return true
}

func (s *MapSet[K]) Contains(val K) bool {
	_, ok := s.m[val]
	return ok
}

func (s *MapSet[K]) Len() int {
	return len(s.keys)
}

func (s *MapSet[K]) Keys() []K {
	return append([]K(nil), s.keys...)
}
