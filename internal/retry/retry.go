// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry runs an operation with a bounded number of attempts and a
// constant backoff. Only errors accepted by the policy's classifier are
// retried; anything else is returned immediately.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
)

// Policy configures [Do].
type Policy struct {
	// MaxAttempts is the total number of tries including the first. Values
	// below 1 are treated as 1.
	MaxAttempts int
	// Backoff is the fixed delay between tries.
	Backoff time.Duration
	// Retryable reports whether an attempt error is worth another try. A nil
	// classifier retries nothing.
	Retryable func(error) bool
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) backoff() goretry.Backoff {
	var b goretry.Backoff
	if p.Backoff > 0 {
		b = goretry.NewConstant(p.Backoff)
	} else {
		b = goretry.BackoffFunc(func() (time.Duration, bool) { return 0, false })
	}
	return goretry.WithMaxRetries(uint64(p.attempts()-1), b)
}

func (p Policy) retryable(err error) bool {
	return p.Retryable != nil && p.Retryable(err)
}

// Do calls attempt until it succeeds, fails with a non-retryable error, or
// the attempt budget is spent. attempt receives its 1-based number. On
// exhaustion the last retryable error is returned unchanged. A context
// cancelled between attempts stops the loop with the context error.
func Do[T any](ctx context.Context, policy Policy, log *logger.Logger, attempt func(ctx context.Context, n int) (T, error)) (T, error) {
	var (
		result T
		n      int
	)

	maxAttempts := policy.attempts()

	err := goretry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		n++
		res, err := attempt(ctx, n)
		if err == nil {
			result = res
			return nil
		}

		if !policy.retryable(err) {
			return err
		}

		if n < maxAttempts {
			log.Warn().
				Str("func", "retry.Do").
				Int("attempt", n).
				Int("max_attempts", maxAttempts).
				Dur("backoff", policy.Backoff).
				Err(err).
				Msg("attempt failed, retrying")
		}
		return goretry.RetryableError(err)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
