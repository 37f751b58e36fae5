// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"maps"
	"slices"
	"time"
)

// TokenPlacement controls where the bearer token travels on each request.
type TokenPlacement string

const (
	TokenInQuery  TokenPlacement = "query"
	TokenInHeader TokenPlacement = "header"
	TokenInBoth   TokenPlacement = "both"
)

// Query reports whether the token is sent as the "token" query parameter.
func (p TokenPlacement) Query() bool { return p == TokenInQuery || p == TokenInBoth }

// Header reports whether the token is sent as an Authorization bearer header.
func (p TokenPlacement) Header() bool { return p == TokenInHeader || p == TokenInBoth }

// Valid reports whether p is a known placement.
func (p TokenPlacement) Valid() bool {
	return p == TokenInQuery || p == TokenInHeader || p == TokenInBoth
}

// Profile names.
const (
	ProfileConnectPing = "connect-ping"
	ProfileConnect     = "connect"
	ProfileStats       = "stats"
)

// Profile bundles the endpoint sequence, token placement and retry budget
// of one tool variant. Each value can be overridden in settings.
type Profile struct {
	Name           string
	Description    string
	Endpoints      []string
	TokenPlacement TokenPlacement
	MaxAttempts    int
	BackoffUnit    time.Duration
}

var profiles = map[string]Profile{
	ProfileConnectPing: {
		Name:           ProfileConnectPing,
		Description:    "connect the node, then ping to verify the session",
		Endpoints:      []string{"/connect", "/ping"},
		TokenPlacement: TokenInQuery,
		MaxAttempts:    3,
		BackoffUnit:    2000 * time.Millisecond,
	},
	ProfileConnect: {
		Name:           ProfileConnect,
		Description:    "connect the node only",
		Endpoints:      []string{"/connect"},
		TokenPlacement: TokenInBoth,
		MaxAttempts:    3,
		BackoffUnit:    2000 * time.Millisecond,
	},
	ProfileStats: {
		Name:           ProfileStats,
		Description:    "fetch account statistics",
		Endpoints:      []string{"/api/stats"},
		TokenPlacement: TokenInHeader,
		MaxAttempts:    5,
		BackoffUnit:    3000 * time.Millisecond,
	},
}

// LookupProfile returns a copy of the named built-in profile.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, false
	}
	p.Endpoints = slices.Clone(p.Endpoints)
	return p, true
}

// ProfileNames lists the built-in profiles in sorted order.
func ProfileNames() []string {
	return slices.Sorted(maps.Keys(profiles))
}
