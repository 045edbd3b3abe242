package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alwaysTransient treats every error as retryable.
type alwaysTransient struct{}

func (alwaysTransient) IsTransient(err error) bool { return err != nil }

// neverTransient treats every error as fatal.
type neverTransient struct{}

func (neverTransient) IsTransient(err error) bool { return false }

func fastBackoff(maxAttempts int) *ExponentialBackoff {
	return NewExponentialBackoff(maxAttempts,
		WithInitialDelay(time.Millisecond),
		WithMaxDelay(time.Millisecond),
		WithJitter(0),
	)
}

func TestExecuteSucceedsFirstTry(t *testing.T) {
	e := NewExecutor(alwaysTransient{}, fastBackoff(3))

	calls := 0
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesThenSucceeds(t *testing.T) {
	e := NewExecutor(alwaysTransient{}, fastBackoff(5))

	calls := 0
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	e := NewExecutor(alwaysTransient{}, fastBackoff(2))

	calls := 0
	failure := errors.New("still failing")
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	require.Error(t, err)
	assert.Equal(t, failure, err)
	// Initial attempt plus two retries.
	assert.Equal(t, 3, calls)
}

func TestExecuteFatalErrorStopsImmediately(t *testing.T) {
	e := NewExecutor(neverTransient{}, fastBackoff(5))

	calls := 0
	failure := errors.New("fatal")
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	require.Error(t, err)
	assert.Equal(t, failure, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteContextCancellation(t *testing.T) {
	e := NewExecutor(alwaysTransient{}, NewExponentialBackoff(10,
		WithInitialDelay(time.Hour),
		WithJitter(0),
	))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := e.Execute(ctx, func(ctx context.Context) error {
		return errors.New("transient")
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWithOnRetryCallback(t *testing.T) {
	var attempts []int
	var lastErr error

	e := NewExecutor(alwaysTransient{}, fastBackoff(3)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			attempts = append(attempts, attempt)
			lastErr = err
		})

	failure := errors.New("transient")
	calls := 0
	err := e.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return failure
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, attempts)
	assert.Equal(t, failure, lastErr)
}

func TestWithOnRetryDoesNotMutateOriginal(t *testing.T) {
	e := NewExecutor(alwaysTransient{}, fastBackoff(1))
	clone := e.WithOnRetry(func(int, error, time.Duration) {})

	assert.NotSame(t, e, clone)
	assert.Nil(t, e.onRetry)
	assert.NotNil(t, clone.onRetry)
}

func TestNewExecutorNilArguments(t *testing.T) {
	assert.PanicsWithValue(t, "classifier cannot be nil", func() {
		NewExecutor(nil, fastBackoff(1))
	})
	assert.PanicsWithValue(t, "strategy cannot be nil", func() {
		NewExecutor(alwaysTransient{}, nil)
	})
}
