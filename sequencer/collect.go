package sequencer

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuannh982/as-completed/sequencer/commons"
)

// CollectN starts n operations with spawn, then returns their events in
// completion order. spawn is called exactly n times, all before any waiting.
func CollectN[V any](ctx context.Context, n int, spawn func() *commons.Operation[V]) ([]commons.CompletionEvent[V], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	if spawn == nil {
		return nil, fmt.Errorf("%w: nil spawn function", ErrInvalidArgument)
	}
	ops := make([]*commons.Operation[V], 0, n)
	for i := 0; i < n; i++ {
		ops = append(ops, spawn())
	}
	seq, err := New(ops...)
	if err != nil {
		return nil, err
	}
	return seq.All(ctx)
}

// Values splits events into the values of successful operations, kept in
// order, and the joined errors of failed ones.
func Values[V any](events []commons.CompletionEvent[V]) ([]V, error) {
	values := make([]V, 0, len(events))
	errs := make([]error, 0)
	for _, ev := range events {
		if ev.IsSuccess() {
			values = append(values, ev.Value)
		} else {
			errs = append(errs, ev.Err)
		}
	}
	return values, errors.Join(errs...)
}
