package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_WaitsForDelay(t *testing.T) {
	f := NewFixed(20 * time.Millisecond)

	start := time.Now()
	err := f.Wait(context.Background())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixed_ZeroDelay(t *testing.T) {
	assert.NoError(t, NewFixed(0).Wait(context.Background()))
}

func TestFixed_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := NewFixed(time.Hour).Wait(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
