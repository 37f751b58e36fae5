// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package gradient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/devops-wiz/gradient-connect/internal/redact"
)

// maxSnippetBytes bounds the body snippet kept for diagnostics.
const maxSnippetBytes = 1024

// TransportError is a failed request: no response, a non-2xx status, or an
// unreadable body. All operator-facing text is redacted.
type TransportError struct {
	Op string
	// StatusCode is 0 when no response was received.
	StatusCode int
	// Body is a redacted, truncated snippet of the response body.
	Body string
	// Headers holds hints such as Retry-After and X-Request-Id.
	Headers []string
	Err     error

	secrets []string
}

func newTransportError(op string, resp *http.Response, body []byte, err error, secrets ...string) *TransportError {
	e := &TransportError{Op: op, Err: err, secrets: secrets}
	if resp != nil {
		e.StatusCode = resp.StatusCode
		e.Headers = headerHints(resp.Header)
	}
	if len(body) > 0 {
		e.Body = bodySnippet(string(body), secrets)
	}
	return e
}

func (e *TransportError) Error() string {
	var msg string
	switch {
	case e.Err != nil && e.StatusCode != 0:
		msg = fmt.Sprintf("%s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.Err != nil:
		msg = fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	default:
		msg = fmt.Sprintf("%s failed with status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		msg += " (deadline exceeded; check connectivity or increase --timeout)"
	}
	return redact.Values(strings.TrimSpace(msg), e.secrets...)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HasResponse reports whether the server answered at all.
func (e *TransportError) HasResponse() bool { return e.StatusCode != 0 }

// Detail renders the response status, header hints and body snippet.
func (e *TransportError) Detail() string {
	if !e.HasResponse() {
		return ""
	}
	parts := []string{fmt.Sprintf("HTTP status: %d", e.StatusCode)}
	if len(e.Headers) > 0 {
		parts = append(parts, "Headers: "+strings.Join(e.Headers, "; "))
	}
	if e.Body != "" {
		parts = append(parts, "Response: "+e.Body)
	}
	return strings.Join(parts, "\n")
}

// headerHints picks the response headers that help diagnose a failure.
func headerHints(h http.Header) []string {
	var hints []string
	for _, k := range []string{"Retry-After", "X-Request-Id", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if v := strings.TrimSpace(h.Get(k)); v != "" {
			hints = append(hints, fmt.Sprintf("%s=%s", k, redact.Secrets(v)))
		}
	}
	return hints
}

// bodySnippet redacts before truncating so the snippet length stays bounded.
func bodySnippet(body string, secrets []string) string {
	s := redact.Values(strings.TrimSpace(body), secrets...)
	if len(s) > maxSnippetBytes {
		cut := maxSnippetBytes
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
