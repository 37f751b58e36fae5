// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import "github.com/spf13/pflag"

// Config is built once at startup and passed by parameter to the client,
// the retry loop and the command runner.
type Config struct {
	Credentials Credentials
	// ProxyURL is the raw PROXY_URL value; it is validated only when the
	// operator asks for proxy use.
	ProxyURL string
	Settings Settings
}

// LoadOptions names the files and flag set Load reads.
type LoadOptions struct {
	CredentialsFile string
	ProxyFile       string
	SettingsFile    string
	Flags           *pflag.FlagSet
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.CredentialsFile == "" {
		o.CredentialsFile = DefaultCredentialsFile
	}
	if o.ProxyFile == "" {
		o.ProxyFile = DefaultProxyFile
	}
	return o
}

// Load reads settings, the credentials file and the proxy file. Every error
// is fatal for the run; no partially loaded Config is returned.
func Load(opts LoadOptions) (*Config, error) {
	opts = opts.withDefaults()

	settings, err := LoadSettings(SettingsOptions{File: opts.SettingsFile, Flags: opts.Flags})
	if err != nil {
		return nil, err
	}

	creds, err := LoadKVFile(opts.CredentialsFile)
	if err != nil {
		return nil, err
	}
	proxy, err := LoadKVFile(opts.ProxyFile)
	if err != nil {
		return nil, err
	}

	c, err := CredentialsFromMap(opts.CredentialsFile, creds)
	if err != nil {
		return nil, err
	}

	return &Config{
		Credentials: c,
		ProxyURL:    ProxyFromMap(proxy),
		Settings:    settings,
	}, nil
}
