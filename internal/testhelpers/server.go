// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"
)

// Reply is one scripted response.
type Reply struct {
	Status int
	Body   string
	Header http.Header
	// Delay holds the response back, e.g. to trigger client timeouts.
	Delay time.Duration
}

// Captured is the part of a request tests assert on.
type Captured struct {
	Method string
	Host   string
	Path   string
	Query  url.Values
	Header http.Header
}

// Server answers with the scripted replies in order, repeating the last
// one once the script is exhausted.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	replies  []Reply
	requests []Captured
}

// NewServer starts a scripted server that is closed when the test ends.
func NewServer(t *testing.T, replies ...Reply) *Server {
	t.Helper()
	if len(replies) == 0 {
		replies = []Reply{{Status: http.StatusOK, Body: `{"status":"ok"}`}}
	}
	s := &Server{replies: replies}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	idx := len(s.requests)
	if idx >= len(s.replies) {
		idx = len(s.replies) - 1
	}
	reply := s.replies[idx]
	s.requests = append(s.requests, Captured{
		Method: r.Method,
		Host:   r.Host,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	s.mu.Unlock()

	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-r.Context().Done():
			return
		}
	}
	for k, vs := range reply.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(reply.Body))
}

// Hits returns the number of requests served so far.
func (s *Server) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Requests returns a copy of the captured requests.
func (s *Server) Requests() []Captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Captured(nil), s.requests...)
}
