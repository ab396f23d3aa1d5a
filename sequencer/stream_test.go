package sequencer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuannh982/as-completed/sequencer/commons"
	"github.com/tuannh982/as-completed/utils/service"
)

func TestStream(t *testing.T) {
	s, err := New(
		delayed(60*time.Millisecond, "c", nil),
		delayed(20*time.Millisecond, "a", nil),
		delayed(40*time.Millisecond, "b", nil),
	)
	require.Nil(t, err)
	stream := NewStream(s)
	require.Nil(t, stream.Start(context.Background()))

	got := make([]string, 0, 3)
	for ev := range stream.C() {
		require.Nil(t, ev.Err)
		got = append(got, ev.Value)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
	stream.Serve()
	require.False(t, stream.IsRunning())
}

func TestStreamEmpty(t *testing.T) {
	s, err := New[int]()
	require.Nil(t, err)
	stream := NewStream(s)
	require.Nil(t, stream.Start(context.Background()))
	_, ok := <-stream.C()
	require.False(t, ok)
	stream.Serve()
}

func TestStreamStopLeavesOperationsObservable(t *testing.T) {
	op := commons.NewOperation[int]()
	s, err := New(op)
	require.Nil(t, err)
	stream := NewStream(s)
	require.Nil(t, stream.Start(context.Background()))
	require.True(t, stream.IsRunning())

	stream.Stop()
	_, ok := <-stream.C()
	require.False(t, ok)
	require.False(t, stream.IsRunning())

	op.Succeed(3)
	v, err := op.Wait(context.Background())
	require.Nil(t, err)
	require.Equal(t, 3, v)
}

func TestStreamDeliversFailedEvents(t *testing.T) {
	errBoom := errors.New("boom")
	s, err := New(
		delayed(50*time.Millisecond, 0, errBoom),
		delayed(100*time.Millisecond, 5, nil),
	)
	require.Nil(t, err)
	stream := NewStream(s)
	require.Nil(t, stream.Start(context.Background()))

	events := make([]commons.CompletionEvent[int], 0, 2)
	for ev := range stream.C() {
		events = append(events, ev)
	}
	require.Len(t, events, 2)
	require.ErrorIs(t, events[0].Err, errBoom)
	require.ErrorIs(t, events[0].Err, ErrOperationFailed)
	require.True(t, events[1].IsSuccess())
	require.Equal(t, 5, events[1].Value)
	stream.Serve()
	require.False(t, stream.IsRunning())
}

func TestStreamParentCancel(t *testing.T) {
	done := commons.NewOperation[int]()
	blocked := commons.NewOperation[int]()
	s, err := New(done, blocked)
	require.Nil(t, err)
	stream := NewStream(s)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.Nil(t, stream.Start(ctx))

	done.Succeed(1)
	ev, ok := <-stream.C()
	require.True(t, ok)
	require.Equal(t, 1, ev.Value)

	cancel()
	select {
	case _, ok = <-stream.C():
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream channel not closed after parent cancel")
	}
	stream.Serve()
	require.False(t, stream.IsRunning())
	require.Eventually(t, func() bool {
		return errors.Is(stream.Start(context.Background()), service.ErrServiceAlreadyStopped)
	}, time.Second, time.Millisecond)

	blocked.Succeed(2)
	v, err := blocked.Wait(context.Background())
	require.Nil(t, err)
	require.Equal(t, 2, v)
}
