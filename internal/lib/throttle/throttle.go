package throttle

import (
	"context"
	"time"
)

// Fixed pauses for the same delay every time, regardless of how the previous
// request went.
type Fixed struct {
	delay time.Duration
}

func NewFixed(delay time.Duration) *Fixed {
	return &Fixed{delay: delay}
}

// Wait blocks for the configured delay or until ctx is done.
func (f *Fixed) Wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
