package commons

import "errors"

var (
	ErrOperationFailed  = errors.New("operation failed")
	ErrOperationPending = errors.New("operation still pending")
	ErrOperationPanic   = errors.New("operation panicked")
)
