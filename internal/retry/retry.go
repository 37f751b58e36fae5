// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package retry

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"
)

// Operation is a single attempt. Any non-nil error counts as a failure.
type Operation func(ctx context.Context) error

// Policy bounds the number of attempts and sets the linear backoff unit.
type Policy struct {
	MaxAttempts int
	BackoffUnit time.Duration
}

func (p Policy) maxAttempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// Wait returns the delay after the given failed attempt (1-based):
// attempt × BackoffUnit, with no jitter and no cap.
func (p Policy) Wait(attempt int) time.Duration {
	if attempt < 1 || p.BackoffUnit <= 0 {
		return 0
	}
	// min == max disables jitter; attemptNum is zero-based.
	return retryablehttp.LinearJitterBackoff(p.BackoffUnit, p.BackoffUnit, attempt-1, nil)
}

// TotalWait is the worst-case time spent waiting when every attempt fails.
func (p Policy) TotalWait() time.Duration {
	var total time.Duration
	for i := 1; i < p.maxAttempts(); i++ {
		total += p.Wait(i)
	}
	return total
}

// Retrier runs an Operation until it succeeds or the attempt budget is spent.
// Every failure is treated the same way; there is no error classification.
type Retrier struct {
	Policy   Policy
	Reporter Reporter
	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Do reports whether op eventually succeeded. Errors from op are surfaced
// through the Reporter and never returned. A cancelled ctx ends the loop
// without running the pending attempt.
func (r *Retrier) Do(ctx context.Context, op Operation) bool {
	rep := r.Reporter
	if rep == nil {
		rep = NopReporter{}
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	logger := hclog.FromContext(ctx).Named("retry")
	max := r.Policy.maxAttempts()

	attempts := 0
	for {
		if ctx.Err() != nil {
			logger.Debug("canceled before attempt", "attempt", attempts+1)
			return false
		}
		err := op(ctx)
		if err == nil {
			logger.Debug("operation succeeded", "attempt", attempts+1)
			return true
		}
		if ctx.Err() != nil {
			logger.Debug("operation interrupted", "attempt", attempts+1)
			return false
		}
		attempts++
		rep.AttemptFailed(attempts, max, err)
		if attempts >= max {
			rep.GaveUp(max, err)
			return false
		}
		wait := r.Policy.Wait(attempts)
		rep.Retrying(attempts, max, wait)
		logger.Debug("backing off", "attempt", attempts, "wait", wait.String())
		if err := sleep(ctx, wait); err != nil {
			return false
		}
	}
}

// PerformWithRetry runs op up to maxAttempts times, waiting
// attempt × backoffUnit after each failure, and reports the outcome as a
// boolean.
func PerformWithRetry(ctx context.Context, op Operation, maxAttempts int, backoffUnit time.Duration, rep Reporter) bool {
	r := &Retrier{
		Policy:   Policy{MaxAttempts: maxAttempts, BackoffUnit: backoffUnit},
		Reporter: rep,
	}
	return r.Do(ctx, op)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
