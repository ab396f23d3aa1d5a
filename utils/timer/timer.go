package timer

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the wait was cut short. A non-positive d returns immediately
// unless ctx is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	clock := time.NewTimer(d)
	select {
	case <-clock.C:
		return nil
	case <-ctx.Done():
		forceStop(clock)
		return ctx.Err()
	}
}

// forceStop stops t and drains its channel if it already fired.
func forceStop(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
