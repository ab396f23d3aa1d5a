package measure

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tuannh982/as-completed/utils/math"
)

// Report is the wall-clock cost of one batch of n operations.
type Report struct {
	Operations   int
	Elapsed      time.Duration
	PerOperation time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("(n=%d,elapsed=%s,per_op=%s)", r.Operations, r.Elapsed, r.PerOperation)
}

// Time runs batch(ctx, n) once and reports how long it took.
func Time(ctx context.Context, n int, batch func(ctx context.Context, n int) error) (Report, error) {
	start := time.Now()
	err := batch(ctx, n)
	elapsed := time.Since(start)
	report := Report{
		Operations: n,
		Elapsed:    elapsed,
	}
	if n > 0 {
		report.PerOperation = math.DivFloor(elapsed, time.Duration(n))
	}
	return report, err
}

// Parallel runs batches copies of batch concurrently and returns the wall
// time until all of them finished. The first error cancels the others.
func Parallel(ctx context.Context, batches int, batch func(ctx context.Context) error) (time.Duration, error) {
	start := time.Now()
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < batches; i++ {
		eg.Go(func() error {
			return batch(egCtx)
		})
	}
	err := eg.Wait()
	return time.Since(start), err
}
