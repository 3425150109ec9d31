// Package timeutils provides context-aware retry and sleep helpers.
package timeutils

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrAllAttemptsFailed = errors.New("all attempts failed")

// Retry runs function up to len(attemptDelays) times, sleeping the matching
// delay after each failed attempt. onFinished decides whether the attempt's
// outcome needs a retry; returning false ends the loop with that outcome.
func Retry[T any](
	ctx context.Context,
	attemptDelays []time.Duration,
	function func(context.Context) (T, error),
	onFinished func(T, error) (needRetry bool),
) (T, error) {
	var zero T
	for _, delay := range attemptDelays {
		if ctx.Err() != nil {
			return zero, fmt.Errorf("retry canceled: %w", ctx.Err())
		}
		res, err := function(ctx)
		if !onFinished(res, err) {
			return res, err
		}
		if err := SleepCtx(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, ErrAllAttemptsFailed
}

// SleepCtx sleeps for d unless the context ends first.
func SleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("sleep canceled: %w", ctx.Err())
	case <-time.After(d):
		return nil
	}
}
