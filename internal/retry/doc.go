// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package retry wraps a single operation in a bounded retry loop with linear
// backoff.
//
// Attempt n that fails is followed by a wait of n × BackoffUnit, so a policy
// of 3 attempts with a 2s unit waits 2s then 4s before giving up. There is no
// jitter, no exponential growth and no distinction between error kinds: every
// failure is retried until the budget is spent. The outcome is a boolean;
// failure details reach the operator through a Reporter.
package retry
