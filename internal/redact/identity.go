// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package redact

import "strings"

// Redaction modes for identity values shown to the operator.
const (
	ModeFull = "full"
	ModeMask = "mask"

	DefaultMode = ModeMask
)

// NormalizeMode lowercases and trims mode, falling back to DefaultMode for
// unknown values.
func NormalizeMode(mode string) string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode != ModeFull && mode != ModeMask {
		return DefaultMode
	}
	return mode
}

// Email masks or redacts an email to avoid PII leakage in console output.
//   - "full": "[REDACTED_EMAIL]"
//   - "mask": keeps the first character and the domain ("j****@example.com")
func Email(email, mode string) string {
	if email == "" {
		return ""
	}
	if NormalizeMode(mode) == ModeFull {
		return "[REDACTED_EMAIL]"
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		// Not a standard email; never echo the raw value.
		return "[REDACTED_EMAIL]"
	}
	return email[:1] + "****@" + email[at+1:]
}

// Token hides a bearer token. In mask mode the first and last four
// characters survive when the token is long enough to keep the rest hidden.
func Token(token, mode string) string {
	if token == "" {
		return ""
	}
	if NormalizeMode(mode) == ModeFull || len(token) < 16 {
		return "[REDACTED]"
	}
	return token[:4] + "…" + token[len(token)-4:]
}
