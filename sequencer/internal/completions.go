package internal

import (
	"context"

	"github.com/tuannh982/as-completed/sequencer/commons"
)

// Completions is a wait-for-any primitive over a group of operations. Every
// watched operation is reported exactly once, after it completes.
type Completions[V any] interface {
	Watch(op *commons.Operation[V])
	WaitAny(ctx context.Context) (*commons.Operation[V], error)
	Ready() []*commons.Operation[V]
}

type completions[V any] struct {
	ch chan *commons.Operation[V]
}

// NewCompletions returns a Completions able to watch up to capacity
// operations. Watching more than capacity operations may block their
// watchers until the consumer catches up.
func NewCompletions[V any](capacity int) Completions[V] {
	return &completions[V]{
		ch: make(chan *commons.Operation[V], capacity),
	}
}

func (c *completions[V]) Watch(op *commons.Operation[V]) {
	go func() {
		<-op.Done()
		c.ch <- op
	}()
}

// WaitAny blocks until at least one watched operation has completed.
func (c *completions[V]) WaitAny(ctx context.Context) (*commons.Operation[V], error) {
	select {
	case op := <-c.ch:
		return op, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ready returns the completions already signalled, without blocking.
func (c *completions[V]) Ready() []*commons.Operation[V] {
	ready := make([]*commons.Operation[V], 0)
	for {
		select {
		case op := <-c.ch:
			ready = append(ready, op)
		default:
			return ready
		}
	}
}
