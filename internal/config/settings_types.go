// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import "time"

// validationErr captures a settings validation error and the offending key.
type validationErr struct {
	key     string // empty for general error
	summary string
	detail  string
}

func (e validationErr) Error() string {
	msg := e.summary
	if e.detail != "" {
		msg += " " + e.detail
	}
	if e.key != "" {
		return e.key + ": " + msg
	}
	return msg
}

// Settings contains the normalized runtime settings used to build the client
// and the retry policy.
type Settings struct {
	Profile            string
	BaseURL            string
	Endpoints          []string
	TokenPlacement     TokenPlacement
	UserAgent          string
	HTTPTimeout        time.Duration
	RetryMaxAttempts   int
	RetryBackoffUnit   time.Duration
	EmailRedactionMode string
	UseProxy           string
	LogLevel           string
	LogJSON            bool
}
