package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/vodmap/pkg/errors"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 5*time.Second, p.AfterPage)
	assert.Equal(t, 2*time.Second, p.AfterFetch)
	assert.Equal(t, 1*time.Second, p.AfterProbe)
	assert.False(t, p.IsZero())
}

func TestNone(t *testing.T) {
	assert.True(t, None().IsZero())
}

func TestWait(t *testing.T) {
	t.Run("zero returns immediately", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, Wait(context.Background(), 0))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("sleeps for duration", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, Wait(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Wait(ctx, time.Hour)
		assert.True(t, errors.IsCanceled(err))
	})
}
