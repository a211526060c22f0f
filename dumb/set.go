package dumb

import mapset "github.com/deckarep/golang-set/v2"

// orderedSet is an insertion-ordered set of references. The slice preserves
// enqueue order, the index keeps membership checks off the slice. Duplicate
// adds and absent removes are no-ops.
type orderedSet[T comparable] struct {
	items []T
	index mapset.Set[T]
}

func (s *orderedSet[T]) add(item T) {
	if s.index == nil {
		s.index = mapset.NewThreadUnsafeSet[T]()
	}
	if !s.index.Add(item) {
		return
	}
	s.items = append(s.items, item)
}

func (s *orderedSet[T]) remove(item T) {
	if s.index == nil || !s.index.Contains(item) {
		return
	}
	s.index.Remove(item)
	for i, it := range s.items {
		if it == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// drain empties the set and returns the prior contents in insertion order.
// The returned slice is the caller's own; it stays valid while the set
// repopulates.
func (s *orderedSet[T]) drain() []T {
	if len(s.items) == 0 {
		return nil
	}
	drained := s.items
	s.items = nil
	s.index = nil
	return drained
}

func (s *orderedSet[T]) size() int {
	return len(s.items)
}
