// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package gradient

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/devops-wiz/gradient-connect/internal/config"
	"github.com/devops-wiz/gradient-connect/internal/redact"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Getter is the request surface a Session needs.
type Getter interface {
	Get(ctx context.Context, path string) (*Response, error)
}

// Result records one successful endpoint call.
type Result struct {
	Endpoint string
	Response *Response
}

// Session calls a profile's endpoints in order. One Run is one attempt.
type Session struct {
	client    Getter
	endpoints []string
	results   []Result
}

// NewSession binds the endpoint sequence to a client.
func NewSession(client Getter, endpoints []string) *Session {
	return &Session{client: client, endpoints: endpoints}
}

// Run performs every endpoint call in order; the first failure fails the
// whole attempt and discards earlier results.
func (s *Session) Run(ctx context.Context) error {
	s.results = s.results[:0]
	for _, ep := range s.endpoints {
		resp, err := s.client.Get(ctx, ep)
		if err != nil {
			s.results = s.results[:0]
			return err
		}
		s.results = append(s.results, Result{Endpoint: ep, Response: resp})
	}
	return nil
}

// Summary renders the lines shown once the session succeeded. Identity
// values are redacted per mode and the last response body is pretty-printed
// when it is JSON.
func (s *Session) Summary(creds config.Credentials, mode string) []string {
	lines := []string{
		fmt.Sprintf("Node running with ID: %s", redact.Token(creds.Token, mode)),
		fmt.Sprintf("User email: %s", redact.Email(creds.Email, mode)),
	}
	for _, r := range s.results {
		line := fmt.Sprintf("%s: HTTP %d", r.Endpoint, r.Response.StatusCode)
		if msg := headline(r.Response.Body); msg != "" {
			line += " " + redact.Values(msg, creds.Token)
		}
		lines = append(lines, line)
	}
	if n := len(s.results); n > 0 {
		if body := RenderBody(s.results[n-1].Response.Body); body != "" {
			lines = append(lines, "Response:")
			for _, l := range strings.Split(redact.Values(body, creds.Token), "\n") {
				lines = append(lines, "  "+l)
			}
		}
	}
	return lines
}

// headline extracts a short status message from a JSON body.
func headline(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "msg", "status"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String {
			return "(" + v.String() + ")"
		}
	}
	return ""
}

// RenderBody pretty-prints JSON bodies and returns other bodies trimmed.
func RenderBody(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	if gjson.ValidBytes(body) {
		return strings.TrimRight(string(pretty.Pretty(body)), "\n")
	}
	return string(body)
}
