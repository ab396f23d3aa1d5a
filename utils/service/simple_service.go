package service

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrServiceAlreadyStopped = errors.New("service already stopped")
)

// SimpleService implements the Start/Stop bookkeeping of Service. A
// SimpleService runs at most once: it cannot be restarted after Stop or after
// its parent context ends.
type SimpleService struct {
	cancel      context.CancelFunc
	closeChan   <-chan struct{}
	stopped     bool
	mu          sync.Mutex
	startStopCb StartStopCallback
}

func NewSimpleService(startStopCb StartStopCallback) *SimpleService {
	return &SimpleService{
		startStopCb: startStopCb,
	}
}

func (s *SimpleService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrServiceAlreadyStopped
	}
	if s.closeChan != nil {
		return ErrServiceAlreadyStarted
	}
	wrappedCtx, cancel := context.WithCancel(ctx)
	if err := s.startStopCb.OnStart(wrappedCtx); err != nil {
		cancel()
		return err
	}
	s.cancel = cancel
	s.closeChan = wrappedCtx.Done()
	// a cancelled parent stops the service the same way Stop does
	go func() {
		<-wrappedCtx.Done()
		s.Stop()
	}()
	return nil
}

func (s *SimpleService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closeChan == nil {
		return false
	}
	select {
	case <-s.closeChan:
		return false
	default:
		return true
	}
}

// Serve blocks until the service stops or its parent context ends. It
// returns immediately if the service was never started.
func (s *SimpleService) Serve() {
	s.mu.Lock()
	ch := s.closeChan
	s.mu.Unlock()
	if ch != nil {
		<-ch
	}
}

func (s *SimpleService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.closeChan == nil {
		return
	}
	s.startStopCb.OnStop()
	s.cancel()
}
