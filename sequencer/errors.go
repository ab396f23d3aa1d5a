package sequencer

import (
	"errors"

	"github.com/tuannh982/as-completed/sequencer/commons"
)

var (
	ErrExhausted       = errors.New("sequencer exhausted")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOperationFailed = commons.ErrOperationFailed
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}
