package commons

import (
	"fmt"

	"github.com/google/uuid"
)

// CompletionEvent is the outcome of exactly one finished Operation.
type CompletionEvent[V any] struct {
	Operation *Operation[V]
	Value     V
	Err       error
}

// NewCompletionEvent builds the event of a completed Operation. A failure is
// wrapped so that it matches both ErrOperationFailed and the underlying cause.
func NewCompletionEvent[V any](op *Operation[V]) CompletionEvent[V] {
	value, err := op.Result()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	return CompletionEvent[V]{
		Operation: op,
		Value:     value,
		Err:       err,
	}
}

func (e CompletionEvent[V]) ID() uuid.UUID {
	return e.Operation.ID()
}

func (e CompletionEvent[V]) IsSuccess() bool {
	return e.Err == nil
}

func (e CompletionEvent[V]) String() string {
	if e.Err != nil {
		return fmt.Sprintf("(id=%s,err=%s)", e.ID(), e.Err)
	}
	return fmt.Sprintf("(id=%s,value=%v)", e.ID(), e.Value)
}
