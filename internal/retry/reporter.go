// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package retry

import "time"

// Reporter receives attempt events so callers can show progress without the
// retry loop knowing about the terminal.
type Reporter interface {
	// AttemptFailed is called after every failed attempt, before any wait.
	AttemptFailed(attempt, maxAttempts int, err error)
	// Retrying is called before waiting for the next attempt.
	Retrying(attempt, maxAttempts int, wait time.Duration)
	// GaveUp is called once the attempt budget is spent.
	GaveUp(maxAttempts int, last error)
}

// NopReporter discards all events.
type NopReporter struct{}

var _ Reporter = NopReporter{}

func (NopReporter) AttemptFailed(int, int, error)    {}
func (NopReporter) Retrying(int, int, time.Duration) {}
func (NopReporter) GaveUp(int, error)                {}
