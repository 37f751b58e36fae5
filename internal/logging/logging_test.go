// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Output: &buf})
	l.Info("hidden")
	l.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, Name)
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	l := New(Options{Level: "loud", Output: &bytes.Buffer{}})
	assert.Equal(t, hclog.Warn, l.GetLevel())
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", JSON: true, Output: &buf})
	l.Debug("request", "attempt", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "request", entry["@message"])
	assert.Equal(t, Name, entry["@module"])
	assert.EqualValues(t, 2, entry["attempt"])
}

func TestWithLogger(t *testing.T) {
	l := New(Options{Output: &bytes.Buffer{}})
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, hclog.FromContext(ctx))
}
