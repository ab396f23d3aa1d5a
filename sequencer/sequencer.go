// Package sequencer yields the outcomes of running operations in the order
// they finish rather than the order they were started.
package sequencer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tuannh982/as-completed/sequencer/commons"
	"github.com/tuannh982/as-completed/sequencer/internal"
	"github.com/tuannh982/as-completed/utils/collections"

	log "github.com/sirupsen/logrus"
)

// Sequencer owns a fixed group of started operations and hands out one
// CompletionEvent per operation, in completion order. It must be driven by a
// single consumer.
//
// When one wait round finds several operations already finished, all of them
// are buffered and served by the following Next calls before waiting again.
// Order within such a round is unspecified.
type Sequencer[V any] struct {
	id uuid.UUID
	// pending holds every operation whose event has not been returned yet
	pending     collections.Set[*commons.Operation[V]]
	ready       collections.Queue[*commons.Operation[V]]
	completions internal.Completions[V]
	log         *log.Entry
}

// New returns a Sequencer over ops. Operations must already be started. The
// same operation passed twice is tracked once.
func New[V any](ops ...*commons.Operation[V]) (*Sequencer[V], error) {
	for i, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("%w: nil operation at index %d", ErrInvalidArgument, i)
		}
	}
	id := uuid.New()
	instance := &Sequencer[V]{
		id:          id,
		pending:     collections.NewHashSetWithCapacity(commons.OperationID[V], len(ops)),
		ready:       collections.NewQueue[*commons.Operation[V]](),
		completions: internal.NewCompletions[V](len(ops)),
		log:         log.WithFields(log.Fields{"sequencer": id.String()}),
	}
	for _, op := range ops {
		if err := instance.pending.Add(op); err != nil {
			instance.log.Debug("duplicate operation ignored ", op)
			continue
		}
		instance.completions.Watch(op)
	}
	instance.log.Debug("sequencer created, pending=", instance.pending.Size())
	return instance, nil
}

func (s *Sequencer[V]) ID() uuid.UUID {
	return s.id
}

// Len reports how many events are still to be returned.
func (s *Sequencer[V]) Len() int {
	return s.pending.Size()
}

// Next blocks until an operation has finished and returns its event. A failed
// operation is returned as an event whose Err matches ErrOperationFailed.
// Once every event has been returned, Next returns ErrExhausted on each call.
// If ctx ends first, Next returns ctx.Err() and nothing is consumed.
func (s *Sequencer[V]) Next(ctx context.Context) (ev commons.CompletionEvent[V], err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.pending.IsEmpty() {
		return ev, ErrExhausted
	}
	if s.ready.Size() == 0 {
		op, err := s.completions.WaitAny(ctx)
		if err != nil {
			return ev, err
		}
		s.ready.Push(op)
		for _, other := range s.completions.Ready() {
			s.ready.Push(other)
		}
		s.log.Debug("completion round, ready=", s.ready.Size(), " pending=", s.pending.Size())
	}
	op, err := s.ready.Pop()
	must(err)
	must(s.pending.Remove(op))
	ev = commons.NewCompletionEvent(op)
	if !ev.IsSuccess() {
		s.log.Debug("operation failed ", op, " err=", ev.Err)
	}
	return ev, nil
}

// All drains the sequencer and returns the remaining events in completion
// order. On a ctx error the events gathered so far are returned with it.
func (s *Sequencer[V]) All(ctx context.Context) ([]commons.CompletionEvent[V], error) {
	events := make([]commons.CompletionEvent[V], 0, s.Len())
	for {
		ev, err := s.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}
