package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedJitter returns a jitterFunc producing a constant value.
func fixedJitter(v float64) func() float64 {
	return func() float64 { return v }
}

func TestNewExponentialBackoffDefaults(t *testing.T) {
	b := NewExponentialBackoff(5)

	assert.Equal(t, 5, b.MaxAttempts())
	assert.Equal(t, 100*time.Millisecond, b.initialDelay)
	assert.Equal(t, 30*time.Second, b.maxDelay)
	assert.Equal(t, 2.0, b.multiplier)
	assert.Equal(t, 0.1, b.jitter)
}

func TestNextDelayGrowsExponentially(t *testing.T) {
	// jitterFunc of 0.5 maps to a zero offset, so delays are exact.
	b := NewExponentialBackoff(10, WithJitterFunc(fixedJitter(0.5)))

	assert.Equal(t, 100*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, 200*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 400*time.Millisecond, b.NextDelay(2))
	assert.Equal(t, 800*time.Millisecond, b.NextDelay(3))
}

func TestNextDelayCappedAtMaxDelay(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(1*time.Second),
		WithMaxDelay(3*time.Second),
		WithJitterFunc(fixedJitter(0.5)),
	)

	assert.Equal(t, 1*time.Second, b.NextDelay(0))
	assert.Equal(t, 2*time.Second, b.NextDelay(1))
	assert.Equal(t, 3*time.Second, b.NextDelay(2))
	assert.Equal(t, 3*time.Second, b.NextDelay(10))
}

func TestNextDelayJitterBounds(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(1*time.Second),
		WithJitter(0.2),
	)

	for i := 0; i < 100; i++ {
		d := b.NextDelay(0)
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}

func TestNextDelayWithoutJitter(t *testing.T) {
	b := NewExponentialBackoff(10, WithJitter(0))

	assert.Equal(t, 100*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, 200*time.Millisecond, b.NextDelay(1))
}

func TestWithMultiplier(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(3.0),
		WithJitter(0),
	)

	assert.Equal(t, 100*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, 300*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 900*time.Millisecond, b.NextDelay(2))
}
