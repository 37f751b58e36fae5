// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/devops-wiz/gradient-connect/internal/config"
	"github.com/devops-wiz/gradient-connect/internal/gradient"
	"github.com/devops-wiz/gradient-connect/internal/logging"
	"github.com/devops-wiz/gradient-connect/internal/prompt"
	"github.com/devops-wiz/gradient-connect/internal/redact"
	"github.com/devops-wiz/gradient-connect/internal/retry"
	"github.com/hashicorp/go-hclog"
)

const proxyQuestion = "Do you want to use a proxy? (yes/no)"

// Console is the operator-facing output the Runner drives.
type Console interface {
	retry.Reporter
	Start(text string)
	Info(text string)
	Warn(text string)
	Succeed(text string)
	Fail(text string)
	Box(title string, lines []string)
	Stop()
}

// Operation is one profile run: Run is a single attempt, Summary renders
// the result after a successful attempt.
type Operation interface {
	Run(ctx context.Context) error
	Summary(creds config.Credentials, mode string) []string
}

// OperationFactory builds the Operation for a loaded config. proxy is nil
// for a direct connection.
type OperationFactory func(cfg *config.Config, proxy *url.URL, logger hclog.Logger) (Operation, error)

// Runner executes the connect flow. Every collaborator is injectable.
type Runner struct {
	Load         func(config.LoadOptions) (*config.Config, error)
	Prompter     prompt.Prompter
	Console      Console
	NewOperation OperationFactory
	// LogOutput receives diagnostics. Defaults to stderr.
	LogOutput io.Writer
}

// NewGradientOperation builds a Client and Session for cfg.
func NewGradientOperation(cfg *config.Config, proxy *url.URL, logger hclog.Logger) (Operation, error) {
	s := cfg.Settings
	client, err := gradient.NewClient(gradient.ClientOptions{
		BaseURL:        s.BaseURL,
		Token:          cfg.Credentials.Token,
		TokenPlacement: s.TokenPlacement,
		UserAgent:      s.UserAgent,
		Timeout:        s.HTTPTimeout,
		Proxy:          proxy,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("client ready", "base_url", s.BaseURL, "profile", s.Profile, "request_id", client.RequestID())
	return gradient.NewSession(client, s.Endpoints), nil
}

// Run loads configuration, resolves proxy use and runs the operation inside
// the retry loop. The returned error is non-nil only for fatal setup
// failures and carries the exit code; network failures and interrupts end
// the run normally.
func (r *Runner) Run(ctx context.Context, opts config.LoadOptions) error {
	load := r.Load
	if load == nil {
		load = config.Load
	}
	newOp := r.NewOperation
	if newOp == nil {
		newOp = NewGradientOperation
	}

	cfg, err := load(opts)
	if err != nil {
		r.Console.Fail(fmt.Sprintf("Failed to load configuration: %v", err))
		return &ExitError{Code: ExitConfig, Err: err}
	}
	s := cfg.Settings

	logger := logging.New(logging.Options{Level: s.LogLevel, JSON: s.LogJSON, Output: r.LogOutput})
	ctx = logging.WithLogger(ctx, logger)
	logger.Debug("configuration loaded",
		"profile", s.Profile,
		"endpoints", s.Endpoints,
		"email", redact.Email(cfg.Credentials.Email, s.EmailRedactionMode),
		"max_attempts", s.RetryMaxAttempts,
		"max_wait", retry.Policy{MaxAttempts: s.RetryMaxAttempts, BackoffUnit: s.RetryBackoffUnit}.TotalWait().String(),
	)

	useProxy, err := r.useProxy(ctx, s.UseProxy)
	if errors.Is(err, prompt.ErrInterrupted) || ctx.Err() != nil {
		r.stopping()
		return nil
	}
	if err != nil {
		r.Console.Fail(fmt.Sprintf("Failed to read answer: %v", err))
		return &ExitError{Code: ExitConfig, Err: err}
	}

	var proxy *url.URL
	if useProxy {
		proxy, err = config.ValidateProxy(cfg.ProxyURL)
		if err != nil {
			r.Console.Fail(err.Error())
			return &ExitError{Code: ExitConfig, Err: err}
		}
		r.Console.Info("Using proxy: " + redact.Secrets(proxy.Redacted()))
	} else {
		r.Console.Info("Using direct connection")
	}

	op, err := newOp(cfg, proxy, logger)
	if err != nil {
		r.Console.Fail(fmt.Sprintf("Failed to build client: %v", err))
		return &ExitError{Code: ExitConfig, Err: err}
	}

	r.Console.Start(fmt.Sprintf("Connecting to %s (%s)...", s.BaseURL, s.Profile))
	ok := retry.PerformWithRetry(ctx, op.Run, s.RetryMaxAttempts, s.RetryBackoffUnit, r.Console)
	if ctx.Err() != nil {
		r.stopping()
		return nil
	}
	if !ok {
		r.Console.Fail(fmt.Sprintf("Failed to connect after %d attempt(s)", s.RetryMaxAttempts))
		return nil
	}
	r.Console.Succeed("Connected")
	r.Console.Box("Gradient node", op.Summary(cfg.Credentials, s.EmailRedactionMode))
	return nil
}

// useProxy resolves the use_proxy setting, asking only when it is "ask".
func (r *Runner) useProxy(ctx context.Context, mode string) (bool, error) {
	switch mode {
	case config.UseProxyYes:
		return true, nil
	case config.UseProxyNo:
		return false, nil
	}
	return r.Prompter.Confirm(ctx, proxyQuestion)
}

func (r *Runner) stopping() {
	r.Console.Stop()
	r.Console.Warn("stopping...")
}
