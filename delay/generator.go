package delay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tuannh982/as-completed/sequencer"
	"github.com/tuannh982/as-completed/utils/timer"
)

// Generate yields count random floats in [0, maxValue), one per interval.
// The channel closes after the last value or when ctx ends.
func Generate(ctx context.Context, count int, interval time.Duration, maxValue float64) <-chan float64 {
	out := make(chan float64)
	go func() {
		defer close(out)
		for i := 0; i < count; i++ {
			if err := timer.Sleep(ctx, interval); err != nil {
				return
			}
			select {
			case out <- rand.Float64() * maxValue:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Comprehension collects everything Generate yields. If ctx ends early it
// returns the values received so far with ctx.Err().
func Comprehension(ctx context.Context, count int, interval time.Duration, maxValue float64) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", sequencer.ErrInvalidArgument, count)
	}
	values := make([]float64, 0, count)
	for v := range Generate(ctx, count, interval, maxValue) {
		values = append(values, v)
	}
	if len(values) < count {
		return values, ctx.Err()
	}
	return values, nil
}
