package collections

import (
	"fmt"
)

// Queue is a FIFO buffer. Pop and Peek on an empty queue return ErrEmpty.
type Queue[V any] interface {
	Push(V)
	Pop() (V, error)
	Peek() (V, error)
	Size() int
}

type queue[V any] struct {
	entries []V
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (s *queue[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *queue[V]) Pop() (v V, err error) {
	if len(s.entries) == 0 {
		return v, ErrEmpty
	}
	ret := s.entries[0]
	// drop the reference so consumed values can be collected
	s.entries[0] = v
	s.entries = s.entries[1:]
	return ret, nil
}

func (s *queue[V]) Peek() (v V, err error) {
	if len(s.entries) == 0 {
		return v, ErrEmpty
	}
	return s.entries[0], nil
}

func (s *queue[V]) Size() int {
	return len(s.entries)
}

func (s queue[V]) String() string {
	return fmt.Sprint(s.entries)
}
