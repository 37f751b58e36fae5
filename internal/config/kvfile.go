// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/file"
)

// Map is a flat key/value view of a credentials or proxy file.
type Map map[string]string

// Get returns the trimmed value for key, or "" when absent.
func (m Map) Get(key string) string {
	return strings.TrimSpace(m[key])
}

// ParseError reports a credentials or proxy file that could not be read or
// does not follow the KEY=VALUE format.
type ParseError struct {
	File   string
	Line   int // 1-based; 0 when the error is not tied to a line
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid config file %s", e.File)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// lineError is produced by the parser before the file name is known.
type lineError struct {
	line   int
	reason string
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.reason)
}

// KVParser implements koanf.Parser for flat KEY=VALUE files: one assignment
// per line, split on the first '=', both sides trimmed. There are no
// sections, comments or quoting. Blank lines are ignored.
type KVParser struct{}

// Unmarshal parses b into a flat map.
func (KVParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	if !bytes.ContainsRune(b, '=') {
		return nil, &lineError{reason: "no KEY=VALUE assignment found"}
	}
	out := map[string]interface{}{}
	for i, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &lineError{line: i + 1, reason: "missing '='"}
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" {
			return nil, &lineError{line: i + 1, reason: "empty key"}
		}
		if value == "" {
			return nil, &lineError{line: i + 1, reason: fmt.Sprintf("empty value for %s", key)}
		}
		out[key] = value
	}
	return out, nil
}

// Marshal renders a flat map back to KEY=VALUE lines in sorted key order.
func (KVParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var b bytes.Buffer
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(&b, "%s=%v\n", k, m[k])
	}
	return b.Bytes(), nil
}

// LoadKVFile reads path as a flat KEY=VALUE file. Any failure is returned as
// a *ParseError naming the file.
func LoadKVFile(path string) (Map, error) {
	// "::" keeps dotted keys flat.
	k := koanf.New("::")
	if err := k.Load(file.Provider(path), KVParser{}); err != nil {
		pe := &ParseError{File: path}
		var le *lineError
		if errors.As(err, &le) {
			pe.Line = le.line
			pe.Reason = le.reason
		} else {
			pe.Reason = "cannot read file"
			pe.Err = err
		}
		return nil, pe
	}
	m := make(Map, len(k.Keys()))
	for _, key := range k.Keys() {
		m[key] = k.String(key)
	}
	return m, nil
}
