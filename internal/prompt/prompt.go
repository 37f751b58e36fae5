// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package prompt asks the operator yes/no questions.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the operator aborts the prompt.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks a single question. Confirm is true only when the answer,
// trimmed, equals "yes" ignoring case; any other answer or end of input is
// false.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// New picks the survey prompter when in and out are terminals and the
// line prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	fin, okIn := in.(*os.File)
	fout, okOut := out.(*os.File)
	if okIn && okOut && isTerminal(fin) && isTerminal(fout) {
		return &Survey{In: fin, Out: fout, Err: fout}
	}
	return &Line{In: in, Out: out}
}

// IsYes applies the answer rule.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// Survey prompts through an interactive terminal.
type Survey struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer

	// ask and saveTerm default to survey.AskOne and saveTermState.
	ask      func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error
	saveTerm func(fd uintptr) (restore func() error, err error)
}

// Confirm asks question with survey. When ctx ends first, the terminal mode
// saved before prompting is restored before returning.
func (s *Survey) Confirm(ctx context.Context, question string) (bool, error) {
	ask := s.ask
	if ask == nil {
		ask = survey.AskOne
	}
	saveTerm := s.saveTerm
	if saveTerm == nil {
		saveTerm = saveTermState
	}
	restore, err := saveTerm(s.In.Fd())
	if err != nil {
		return false, fmt.Errorf("read terminal state: %w", err)
	}

	type result struct {
		answer string
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		var answer string
		err := ask(
			&survey.Input{Message: question, Help: "type yes to enable, anything else to skip"},
			&answer,
			survey.WithStdio(s.In, s.Out, s.Err),
		)
		ch <- result{answer, err}
	}()

	select {
	case <-ctx.Done():
		if err := restore(); err != nil {
			return false, fmt.Errorf("%w: restore terminal: %v", ErrInterrupted, err)
		}
		return false, ErrInterrupted
	case r := <-ch:
		switch {
		case errors.Is(r.err, terminal.InterruptErr):
			return false, ErrInterrupted
		case errors.Is(r.err, io.EOF):
			return false, nil
		case r.err != nil:
			return false, fmt.Errorf("read answer: %w", r.err)
		}
		return IsYes(r.answer), nil
	}
}

func saveTermState(fd uintptr) (func() error, error) {
	state, err := term.GetState(int(fd))
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(int(fd), state) }, nil
}

// Line prompts by writing the question and reading one line. It is used
// when stdin is not a terminal.
type Line struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (l *Line) Confirm(ctx context.Context, question string) (bool, error) {
	if l.reader == nil {
		l.reader = bufio.NewReader(l.In)
	}
	if l.Out != nil {
		if _, err := fmt.Fprintf(l.Out, "%s ", question); err != nil {
			return false, fmt.Errorf("write prompt: %w", err)
		}
	}

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := l.reader.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInterrupted
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", r.err)
		}
		return IsYes(r.line), nil
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
