// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package cli wires the gradient-connect command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/devops-wiz/gradient-connect/internal/config"
	"github.com/devops-wiz/gradient-connect/internal/console"
	"github.com/devops-wiz/gradient-connect/internal/prompt"
	"github.com/devops-wiz/gradient-connect/internal/redact"
	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at release time.
type BuildInfo struct {
	Version string
	Commit  string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s+commit.%s", b.Version, b.Commit)
}

// IOStreams are the process streams the command reads and writes.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type rootOptions struct {
	credentialsFile string
	proxyFile       string
	configFile      string
}

// NewCmd builds the root command around r.
func NewCmd(r *Runner, info BuildInfo) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gradient-connect [FLAGS]",
		Short: "Connect a node to the Gradient network API",
		Long: heredoc.Docf(`
			Connect a node to the Gradient network API.

			Credentials are read from %[1]s (ID_TOKEN and USER_EMAIL) and the
			optional proxy from %[2]s (PROXY_URL). Failed attempts are retried
			with a linearly growing delay.

			Profiles:%[3]s`,
			config.DefaultCredentialsFile, config.DefaultProxyFile, profileUsage()),
		Example: heredoc.Doc(`
			# Connect and ping, asking whether to use the proxy
			$ gradient-connect

			# Unattended run through the proxy in proxy.txt
			$ gradient-connect --use-proxy yes

			# Query the stats endpoint with debug logs
			$ gradient-connect --profile stats --log-level debug`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.String(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.Run(cmd.Context(), config.LoadOptions{
				CredentialsFile: opts.credentialsFile,
				ProxyFile:       opts.proxyFile,
				SettingsFile:    opts.configFile,
				Flags:           cmd.Flags(),
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.credentialsFile, "credentials-file", config.DefaultCredentialsFile, "file holding ID_TOKEN and USER_EMAIL")
	f.StringVar(&opts.proxyFile, "proxy-file", config.DefaultProxyFile, "file holding PROXY_URL")
	f.StringVar(&opts.configFile, "config", "", "optional YAML settings file")

	// Settings flags only override lower layers when set explicitly.
	f.String("profile", "", "endpoint profile: "+strings.Join(config.ProfileNames(), ", ")+" (default connect-ping)")
	f.String("base-url", "", "API base URL (default https://api.gradient.network)")
	f.String("endpoints", "", "comma separated endpoint paths (default from profile)")
	f.String("token-placement", "", "token placement: query, header or both (default from profile)")
	f.String("user-agent", "", "User-Agent header")
	f.String("timeout", "", "per-request timeout, e.g. 5s")
	f.String("max-attempts", "", "attempt budget (default from profile)")
	f.String("backoff-unit", "", "backoff unit; attempt n waits n times this, e.g. 2s")
	f.String("email-redaction", "", "identity redaction in the summary: "+redact.ModeMask+" or "+redact.ModeFull)
	f.String("use-proxy", "", "ask, yes or no (default ask)")
	f.String("log-level", "", "diagnostic log level: trace, debug, info, warn, error")
	f.Bool("log-json", false, "write diagnostics as JSON")

	cmd.AddCommand(newVersionCmd(info))
	return cmd
}

// profileUsage lists the built-in profiles, one per line.
func profileUsage() string {
	var b strings.Builder
	for _, name := range config.ProfileNames() {
		p, _ := config.LookupProfile(name)
		fmt.Fprintf(&b, "\n  %-13s %s", name, p.Description)
	}
	return b.String()
}

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gradient-connect %s\n", info)
		},
	}
}

// Execute runs the command line against the given streams and returns the
// process exit code.
func Execute(ctx context.Context, args []string, streams IOStreams, info BuildInfo) int {
	r := &Runner{
		Prompter:  prompt.New(streams.In, streams.Out),
		Console:   console.New(streams.Out),
		LogOutput: streams.ErrOut,
	}
	return execute(ctx, NewCmd(r, info), args, streams)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, streams IOStreams) int {
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	// Runner failures were already shown; report usage errors here.
	if _, ok := err.(*ExitError); !ok {
		fmt.Fprintf(streams.ErrOut, "Error: %v\n", err)
	}
	return ExitCode(err)
}
