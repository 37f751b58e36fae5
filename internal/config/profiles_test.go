// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupProfile(t *testing.T) {
	cases := []struct {
		name      string
		endpoints []string
		placement TokenPlacement
		attempts  int
		unit      time.Duration
	}{
		{ProfileConnectPing, []string{"/connect", "/ping"}, TokenInQuery, 3, 2 * time.Second},
		{ProfileConnect, []string{"/connect"}, TokenInBoth, 3, 2 * time.Second},
		{ProfileStats, []string{"/api/stats"}, TokenInHeader, 5, 3 * time.Second},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, ok := LookupProfile(c.name)
			require.True(t, ok)
			assert.Equal(t, c.endpoints, p.Endpoints)
			assert.Equal(t, c.placement, p.TokenPlacement)
			assert.Equal(t, c.attempts, p.MaxAttempts)
			assert.Equal(t, c.unit, p.BackoffUnit)
		})
	}

	_, ok := LookupProfile("nope")
	assert.False(t, ok)
}

func TestLookupProfile_ReturnsCopy(t *testing.T) {
	p, _ := LookupProfile(ProfileConnectPing)
	p.Endpoints[0] = "/mutated"
	again, _ := LookupProfile(ProfileConnectPing)
	assert.Equal(t, "/connect", again.Endpoints[0])
}

func TestProfileNames(t *testing.T) {
	assert.Equal(t, []string{"connect", "connect-ping", "stats"}, ProfileNames())
}

func TestTokenPlacement(t *testing.T) {
	assert.True(t, TokenInQuery.Query())
	assert.False(t, TokenInQuery.Header())
	assert.True(t, TokenInHeader.Header())
	assert.False(t, TokenInHeader.Query())
	assert.True(t, TokenInBoth.Query() && TokenInBoth.Header())
	assert.False(t, TokenPlacement("cookie").Valid())
}
