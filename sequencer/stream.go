package sequencer

import (
	"context"
	"errors"

	"github.com/tuannh982/as-completed/sequencer/commons"
	"github.com/tuannh982/as-completed/utils/service"

	log "github.com/sirupsen/logrus"
)

// Stream pumps a Sequencer into a channel. C is closed once the sequencer is
// exhausted or the stream stops; the stream stops itself after exhaustion.
//
// Stopping a stream never cancels the operations. An event taken from the
// sequencer but not yet received from C when the stream stops is dropped;
// its outcome is still available through the operation itself.
type Stream[V any] struct {
	*service.SimpleService
	seq *Sequencer[V]
	out chan commons.CompletionEvent[V]
	log *log.Entry
}

func NewStream[V any](seq *Sequencer[V]) *Stream[V] {
	instance := &Stream[V]{
		seq: seq,
		out: make(chan commons.CompletionEvent[V]),
		log: log.WithFields(log.Fields{"stream": seq.ID().String()}),
	}
	instance.SimpleService = service.NewSimpleService(instance)
	return instance
}

func (s *Stream[V]) OnStart(ctx context.Context) error {
	go s.pumpRoutine(ctx)
	return nil
}

func (s *Stream[V]) OnStop() {
	s.log.Debug("stream stopped")
}

func (s *Stream[V]) C() <-chan commons.CompletionEvent[V] {
	return s.out
}

func (s *Stream[V]) pumpRoutine(ctx context.Context) {
	defer close(s.out)
	for {
		ev, err := s.seq.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			s.Stop()
			return
		}
		if err != nil {
			return
		}
		select {
		case s.out <- ev:
		case <-ctx.Done():
			s.log.Debug("event dropped on stop ", ev)
			return
		}
	}
}
