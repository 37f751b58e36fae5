// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package console renders operator-facing progress: a spinner on a terminal,
// plain status lines everywhere else.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/devops-wiz/gradient-connect/internal/retry"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var _ retry.Reporter = (*Console)(nil)

// Console writes status lines and, on a terminal, animates a spinner for the
// in-progress step. It is safe for concurrent use.
type Console struct {
	mu   sync.Mutex
	out  io.Writer
	spin *spinner.Spinner
	text string

	ok, fail, info, warn, dim *color.Color
}

// New binds a Console to out. The spinner and colors are enabled only when
// out is a terminal.
func New(out io.Writer) *Console {
	tty := isTerminal(out)
	c := &Console{
		out:  out,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		info: color.New(color.FgBlue),
		warn: color.New(color.FgYellow),
		dim:  color.New(color.Faint),
	}
	for _, col := range []*color.Color{c.ok, c.fail, c.info, c.warn, c.dim} {
		if tty {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	if tty {
		c.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	}
	return c
}

// Start shows text as the current in-progress step.
func (c *Console) Start(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	if c.spin == nil {
		c.line(c.dim.Sprint("…"), text)
		return
	}
	c.spin.Suffix = " " + text
	if !c.spin.Active() {
		c.spin.Start()
	}
}

// Info prints a permanent informational line and keeps the spinner running.
func (c *Console) Info(text string) { c.persist(c.info.Sprint("ℹ"), text, false) }

// Warn prints a permanent warning line and keeps the spinner running.
func (c *Console) Warn(text string) { c.persist(c.warn.Sprint("⚠"), text, false) }

// Succeed ends the current step as successful.
func (c *Console) Succeed(text string) { c.persist(c.ok.Sprint("✔"), text, true) }

// Fail ends the current step as failed.
func (c *Console) Fail(text string) { c.persist(c.fail.Sprint("✖"), text, true) }

// Stop halts the spinner without printing anything.
func (c *Console) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spin != nil && c.spin.Active() {
		c.spin.Stop()
	}
}

// Box prints title and lines inside a simple frame.
func (c *Console) Box(title string, lines []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	restart := c.pause()

	width := len([]rune(title))
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	border := strings.Repeat("─", width+2)
	fmt.Fprintf(c.out, "┌%s┐\n", border)
	fmt.Fprintf(c.out, "│ %s │\n", pad(title, width))
	fmt.Fprintf(c.out, "├%s┤\n", border)
	for _, l := range lines {
		fmt.Fprintf(c.out, "│ %s │\n", pad(l, width))
	}
	fmt.Fprintf(c.out, "└%s┘\n", border)

	if restart {
		c.spin.Start()
	}
}

// AttemptFailed reports a failed attempt with any response detail.
func (c *Console) AttemptFailed(attempt, maxAttempts int, err error) {
	msg := fmt.Sprintf("Attempt %d/%d failed: %v", attempt, maxAttempts, err)
	var d interface{ Detail() string }
	if errors.As(err, &d) {
		if detail := d.Detail(); detail != "" {
			msg += "\n" + indent(detail, "    ")
		}
	}
	c.Warn(msg)
}

// Retrying shows the pending backoff as the in-progress step.
func (c *Console) Retrying(attempt, maxAttempts int, wait time.Duration) {
	c.Start(fmt.Sprintf("Retrying (%d/%d) in %s...", attempt, maxAttempts, wait.Round(time.Millisecond)))
}

// GaveUp reports that the attempt budget is spent.
func (c *Console) GaveUp(maxAttempts int, last error) {
	c.Warn(fmt.Sprintf("Giving up after %d attempt(s)", maxAttempts))
}

// persist prints a symbol-prefixed line above the spinner. When final, the
// spinner stays stopped.
func (c *Console) persist(symbol, text string, final bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	restart := c.pause()
	c.line(symbol, text)
	if final {
		c.text = ""
		return
	}
	if restart {
		c.spin.Start()
	}
}

// pause stops an active spinner and reports whether it was running.
func (c *Console) pause() bool {
	if c.spin == nil || !c.spin.Active() {
		return false
	}
	c.spin.Stop()
	return true
}

func (c *Console) line(symbol, text string) {
	fmt.Fprintf(c.out, "%s %s\n", symbol, text)
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
