// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package logging builds the diagnostic logger. Diagnostics go to stderr and
// stay separate from the operator-facing console output.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

// Name is the root logger name.
const Name = "gradient-connect"

// Options selects level, format and destination.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns an hclog logger. Color is enabled only for text output on a
// terminal. An unknown level falls back to warn.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := hclog.LevelFromString(strings.TrimSpace(opts.Level))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	color := hclog.ColorOff
	if !opts.JSON && isTerminal(out) {
		color = hclog.AutoColor
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
		Color:      color,
	})
}

// WithLogger stores l in ctx for hclog.FromContext.
func WithLogger(ctx context.Context, l hclog.Logger) context.Context {
	return hclog.WithContext(ctx, l)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
