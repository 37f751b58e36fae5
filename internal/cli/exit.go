// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package cli

import "errors"

// Process exit codes.
const (
	ExitOK     = 0
	ExitConfig = 1
)

// ExitError carries the exit code for a fatal setup failure. The failure has
// already been shown to the operator.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitConfig
}
