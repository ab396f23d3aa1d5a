package collections

// Set is an unordered, membership-unique collection. Implementations are not
// safe for concurrent use.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	IsEmpty() bool
	Entries() []V
}
