package collections

import "golang.org/x/exp/maps"

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

// HashSetHashFunc maps a value to its identity key. Two values with the same
// key are the same member of the set.
type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return NewHashSetWithCapacity(f, 0)
}

func NewHashSetWithCapacity[R comparable, V any](f HashSetHashFunc[R, V], capacity int) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V, capacity),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return ErrValueExisted
	}
	s.entries[hash] = v
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; !ok {
		return ErrValueNotExisted
	}
	delete(s.entries, hash)
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *hashSet[R, V]) Entries() []V {
	return maps.Values(s.entries)
}
