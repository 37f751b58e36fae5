// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/devops-wiz/gradient-connect/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKVFile_WellFormed(t *testing.T) {
	path := testhelpers.MustWrite(t, "token.txt", " ID_TOKEN = abc.def==\r\n\nUSER_EMAIL=node@example.com\n")
	m, err := LoadKVFile(path)
	require.NoError(t, err)
	assert.Equal(t, Map{"ID_TOKEN": "abc.def==", "USER_EMAIL": "node@example.com"}, m)
}

func TestLoadKVFile_DottedKeysStayFlat(t *testing.T) {
	path := testhelpers.MustWrite(t, "proxy.txt", "proxy.url=http://h:1\n")
	m, err := LoadKVFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://h:1", m.Get("proxy.url"))
}

func TestLoadKVFile_Failures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		line    int
		reason  string
	}{
		{name: "no assignment", content: "just some text\n", line: 0, reason: "no KEY=VALUE assignment found"},
		{name: "empty file", content: "", line: 0, reason: "no KEY=VALUE assignment found"},
		{name: "line without equals", content: "ID_TOKEN=abc\ngarbage\n", line: 2, reason: "missing '='"},
		{name: "empty key", content: "=abc\n", line: 1, reason: "empty key"},
		{name: "empty value", content: "ID_TOKEN=abc\nUSER_EMAIL=\n", line: 2, reason: "empty value for USER_EMAIL"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := testhelpers.MustWrite(t, "token.txt", c.content)
			_, err := LoadKVFile(path)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			assert.Equal(t, path, pe.File)
			assert.Equal(t, c.line, pe.Line)
			assert.Equal(t, c.reason, pe.Reason)
			assert.Contains(t, pe.Error(), path)
		})
	}
}

func TestLoadKVFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := LoadKVFile(path)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "cannot read file", pe.Reason)
	assert.Error(t, pe.Unwrap())
}

func TestKVParser_Marshal(t *testing.T) {
	b, err := KVParser{}.Marshal(map[string]interface{}{"USER_EMAIL": "a@b.c", "ID_TOKEN": "x"})
	require.NoError(t, err)
	assert.Equal(t, "ID_TOKEN=x\nUSER_EMAIL=a@b.c\n", string(b))
}
