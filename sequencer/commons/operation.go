package commons

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Operation is a started unit of work that eventually yields a value or an
// error. Each Operation has its own identity, even when two of them run the
// same function with the same arguments.
type Operation[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	once      sync.Once
	value     V
	err       error
}

// NewOperation returns an Operation completed by an explicit call to Complete.
func NewOperation[V any]() *Operation[V] {
	return &Operation[V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Go starts fn on its own goroutine and returns the Operation tracking it.
// A panic inside fn completes the Operation with an ErrOperationPanic error.
func Go[V any](ctx context.Context, fn func(ctx context.Context) (V, error)) *Operation[V] {
	op := NewOperation[V]()
	go func() {
		var (
			value V
			err   error
		)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrOperationPanic, r)
			}
			op.Complete(value, err)
		}()
		value, err = fn(ctx)
	}()
	return op
}

// Complete records the outcome. Only the first call takes effect; it reports
// whether this call was the one that completed the Operation.
func (o *Operation[V]) Complete(value V, err error) bool {
	completed := false
	o.once.Do(func() {
		o.value = value
		o.err = err
		close(o.done)
		completed = true
	})
	return completed
}

// Succeed is shorthand for Complete(value, nil).
func (o *Operation[V]) Succeed(value V) bool {
	return o.Complete(value, nil)
}

// Fail is shorthand for Complete(zero, err).
func (o *Operation[V]) Fail(err error) bool {
	var zero V
	return o.Complete(zero, err)
}

func (o *Operation[V]) ID() uuid.UUID {
	return o.id
}

func (o *Operation[V]) CreatedAt() time.Time {
	return o.createdAt
}

// Done is closed once the Operation has completed.
func (o *Operation[V]) Done() <-chan struct{} {
	return o.done
}

func (o *Operation[V]) IsDone() bool {
	select {
	case <-o.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome without blocking. Before completion it returns
// ErrOperationPending.
func (o *Operation[V]) Result() (v V, err error) {
	if !o.IsDone() {
		return v, ErrOperationPending
	}
	return o.value, o.err
}

// Wait blocks until the Operation completes or ctx is done.
func (o *Operation[V]) Wait(ctx context.Context) (v V, err error) {
	select {
	case <-o.done:
		return o.value, o.err
	case <-ctx.Done():
		return v, ctx.Err()
	}
}

func (o *Operation[V]) String() string {
	return fmt.Sprintf("(id=%s,done=%t)", o.id, o.IsDone())
}

func OperationID[V any](o *Operation[V]) uuid.UUID {
	return o.id
}
