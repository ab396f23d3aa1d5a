package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockCallback struct {
	started atomic.Int32
	stopped atomic.Int32
	exited  chan struct{}
}

func (m *mockCallback) OnStart(ctx context.Context) error {
	m.started.Add(1)
	go func() {
		<-ctx.Done()
		close(m.exited)
	}()
	return nil
}

func (m *mockCallback) OnStop() {
	m.stopped.Add(1)
}

func TestSimpleService(t *testing.T) {
	cb := &mockCallback{exited: make(chan struct{})}
	s := NewSimpleService(cb)
	require.False(t, s.IsRunning())

	require.Nil(t, s.Start(context.Background()))
	require.True(t, s.IsRunning())
	require.ErrorIs(t, s.Start(context.Background()), ErrServiceAlreadyStarted)

	go func() {
		time.Sleep(20 * time.Millisecond)
		s.Stop()
	}()
	s.Serve()
	<-cb.exited
	require.False(t, s.IsRunning())

	s.Stop()
	require.Equal(t, int32(1), cb.started.Load())
	require.Equal(t, int32(1), cb.stopped.Load())
	require.ErrorIs(t, s.Start(context.Background()), ErrServiceAlreadyStopped)
}

func TestSimpleServiceParentCancel(t *testing.T) {
	cb := &mockCallback{exited: make(chan struct{})}
	s := NewSimpleService(cb)
	ctx, cancel := context.WithCancel(context.Background())
	require.Nil(t, s.Start(ctx))
	cancel()
	s.Serve()
	<-cb.exited
	require.False(t, s.IsRunning())
	require.Eventually(t, func() bool {
		return cb.stopped.Load() == 1
	}, time.Second, time.Millisecond)
	require.ErrorIs(t, s.Start(context.Background()), ErrServiceAlreadyStopped)

	s.Stop()
	require.Equal(t, int32(1), cb.stopped.Load())
}

func TestSimpleServiceStopBeforeStart(t *testing.T) {
	cb := &mockCallback{exited: make(chan struct{})}
	s := NewSimpleService(cb)
	s.Stop()
	s.Serve()
	require.Equal(t, int32(0), cb.stopped.Load())
	require.ErrorIs(t, s.Start(context.Background()), ErrServiceAlreadyStopped)
}
