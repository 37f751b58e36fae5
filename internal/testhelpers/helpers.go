// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// MustCopy copies from r to a temp file and returns its path.
func MustCopy(t *testing.T, name string, r io.Reader) string {
	t.Helper()
	tmp := t.TempDir()
	dst := filepath.Join(tmp, name)
	f, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	err = f.Close()
	if err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return dst
}

// MustWrite writes content to a temp file named name and returns its path.
func MustWrite(t *testing.T, name, content string) string {
	t.Helper()
	return MustCopy(t, name, strings.NewReader(content))
}

// CredentialsFile writes a token.txt with the given values.
func CredentialsFile(t *testing.T, token, email string) string {
	t.Helper()
	return MustWrite(t, "token.txt", "ID_TOKEN="+token+"\nUSER_EMAIL="+email+"\n")
}

// ProxyFile writes a proxy.txt holding proxyURL.
func ProxyFile(t *testing.T, proxyURL string) string {
	t.Helper()
	return MustWrite(t, "proxy.txt", "PROXY_URL="+proxyURL+"\n")
}

// BuildLargeBody creates a large JSON-like string embedding various secrets
// to validate both truncation and redaction. Size target ~2MB.
func BuildLargeBody() string {
	var b strings.Builder
	chunks := 2 << 20 / 64
	for i := 0; i < chunks; i++ {
		b.WriteString(`{"authorization":"Bearer TOPSECRET`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`","token":"AAA`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`","password":"PWD`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`"}`)
	}
	return b.String()
}
