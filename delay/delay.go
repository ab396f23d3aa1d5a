// Package delay provides operations that finish after a random delay, the
// workload used to exercise the sequencer.
package delay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tuannh982/as-completed/sequencer"
	"github.com/tuannh982/as-completed/sequencer/commons"
	"github.com/tuannh982/as-completed/utils/timer"
)

// RandomDelay returns a uniformly random duration in [0, maxDelay].
func RandomDelay(maxDelay time.Duration) time.Duration {
	if maxDelay <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(maxDelay) + 1))
}

// WaitRandom sleeps for a random delay of at most maxDelay and returns it.
func WaitRandom(ctx context.Context, maxDelay time.Duration) (time.Duration, error) {
	d := RandomDelay(maxDelay)
	if err := timer.Sleep(ctx, d); err != nil {
		return 0, err
	}
	return d, nil
}

// TaskWaitRandom starts WaitRandom as an operation.
func TaskWaitRandom(ctx context.Context, maxDelay time.Duration) *commons.Operation[time.Duration] {
	return commons.Go(ctx, func(ctx context.Context) (time.Duration, error) {
		return WaitRandom(ctx, maxDelay)
	})
}

// WaitN starts n random waits and returns their delays in completion order,
// which is ascending up to timer resolution.
func WaitN(ctx context.Context, n int, maxDelay time.Duration) ([]time.Duration, error) {
	if maxDelay < 0 {
		return nil, fmt.Errorf("%w: negative max delay %s", sequencer.ErrInvalidArgument, maxDelay)
	}
	events, err := sequencer.CollectN(ctx, n, func() *commons.Operation[time.Duration] {
		return TaskWaitRandom(ctx, maxDelay)
	})
	if err != nil {
		return nil, err
	}
	return sequencer.Values(events)
}
