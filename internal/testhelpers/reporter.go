// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"context"
	"sync"
	"time"
)

// Event kinds recorded by RecordingReporter.
const (
	EventAttemptFailed = "attempt_failed"
	EventRetrying      = "retrying"
	EventGaveUp        = "gave_up"
)

// Event is one reporter call.
type Event struct {
	Kind    string
	Attempt int
	Max     int
	Wait    time.Duration
	Err     error
}

// RecordingReporter records every retry progress event.
type RecordingReporter struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingReporter) AttemptFailed(attempt, maxAttempts int, err error) {
	r.add(Event{Kind: EventAttemptFailed, Attempt: attempt, Max: maxAttempts, Err: err})
}

func (r *RecordingReporter) Retrying(attempt, maxAttempts int, wait time.Duration) {
	r.add(Event{Kind: EventRetrying, Attempt: attempt, Max: maxAttempts, Wait: wait})
}

func (r *RecordingReporter) GaveUp(maxAttempts int, last error) {
	r.add(Event{Kind: EventGaveUp, Max: maxAttempts, Err: last})
}

func (r *RecordingReporter) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *RecordingReporter) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Count returns how many events of kind were recorded.
func (r *RecordingReporter) Count(kind string) int {
	n := 0
	for _, e := range r.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// FakeSleeper records requested waits and returns immediately unless ctx is
// already done.
type FakeSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
	// OnSleep runs after a wait is recorded, e.g. to cancel the context.
	OnSleep func(n int)
}

func (s *FakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.waits = append(s.waits, d)
	n := len(s.waits)
	s.mu.Unlock()
	if s.OnSleep != nil {
		s.OnSleep(n)
	}
	return ctx.Err()
}

// Waits returns a copy of the recorded waits.
func (s *FakeSleeper) Waits() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.waits...)
}
