package timeutils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	res, err := Retry(
		context.Background(),
		[]time.Duration{0, 0, 0},
		func(context.Context) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("transient")
			}
			return 42, nil
		},
		func(_ int, err error) bool { return err != nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 42, res)
	assert.Equal(t, 3, attempts)
}

func TestRetryAllAttemptsFailed(t *testing.T) {
	_, err := Retry(
		context.Background(),
		[]time.Duration{0, 0},
		func(context.Context) (int, error) {
			return 0, errors.New("transient")
		},
		func(_ int, err error) bool { return err != nil },
	)
	assert.ErrorIs(t, err, ErrAllAttemptsFailed)
}

func TestRetryStopsWhenNoRetryNeeded(t *testing.T) {
	expected := errors.New("permanent")
	_, err := Retry(
		context.Background(),
		[]time.Duration{0, 0},
		func(context.Context) (int, error) {
			return 0, expected
		},
		func(_ int, err error) bool { return false },
	)
	assert.ErrorIs(t, err, expected)
}

func TestRetryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(
		ctx,
		[]time.Duration{time.Second},
		func(context.Context) (int, error) { return 1, nil },
		func(_ int, err error) bool { return err != nil },
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleepCtx(t *testing.T) {
	require.NoError(t, SleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SleepCtx(ctx, time.Minute), context.Canceled)
}
