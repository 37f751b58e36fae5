// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devops-wiz/gradient-connect/internal/redact"
	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

// SettingsOptions selects the optional layers read by LoadSettings.
type SettingsOptions struct {
	// File is an optional YAML settings file.
	File string
	// Flags overrides any layer for flags the operator actually set.
	Flags *pflag.FlagSet
}

// LoadSettings resolves runtime settings from defaults, the optional YAML
// file, GRADIENT_* environment variables and command-line flags, in that
// order of precedence (lowest first). Profile values fill keys no layer set.
func LoadSettings(opts SettingsOptions) (Settings, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(baseDefaults(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("load default settings: %w", err)
	}
	if opts.File != "" {
		if err := k.Load(file.Provider(opts.File), yaml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("read settings file %s: %w", opts.File, err)
		}
	}
	// Aliases first so canonical variables win.
	for _, names := range []map[string]string{envAliases, envKeys} {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envCallback(names)), nil); err != nil {
			return Settings{}, fmt.Errorf("read environment: %w", err)
		}
	}
	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagCallback), nil); err != nil {
			return Settings{}, fmt.Errorf("read flags: %w", err)
		}
	}

	s, errs := deriveSettings(k)
	if len(errs) == 0 {
		errs = validateSettings(s)
	}
	if len(errs) > 0 {
		var merr *multierror.Error
		for _, e := range errs {
			e.detail = redact.Secrets(e.detail)
			merr = multierror.Append(merr, e)
		}
		merr.ErrorFormat = formatSettingsErrors
		return Settings{}, merr
	}
	return s, nil
}

func baseDefaults() map[string]interface{} {
	return map[string]interface{}{
		keyProfile:            defaultProfile,
		keyBaseURL:            defaultBaseURL,
		keyUserAgent:          defaultUserAgent,
		keyHTTPTimeout:        defaultHTTPTimeout.String(),
		keyEmailRedactionMode: redact.DefaultMode,
		keyUseProxy:           defaultUseProxy,
		keyLogLevel:           defaultLogLevel,
		keyLogJSON:            false,
	}
}

func envCallback(names map[string]string) func(string, string) (string, interface{}) {
	return func(name, value string) (string, interface{}) {
		key, ok := names[name]
		if !ok || strings.TrimSpace(value) == "" {
			return "", nil
		}
		return key, value
	}
}

func flagCallback(f *pflag.Flag) (string, interface{}) {
	key, ok := flagKeys[f.Name]
	if !ok || !f.Changed {
		return "", nil
	}
	return key, f.Value.String()
}

// deriveSettings normalizes raw koanf values. Parse failures are returned as
// validation errors so the operator sees every problem at once.
func deriveSettings(k *koanf.Koanf) (Settings, []validationErr) {
	var errs []validationErr

	s := Settings{
		Profile:            strings.ToLower(strings.TrimSpace(k.String(keyProfile))),
		BaseURL:            strings.TrimRight(strings.TrimSpace(k.String(keyBaseURL)), "/"),
		UserAgent:          strings.TrimSpace(k.String(keyUserAgent)),
		EmailRedactionMode: redact.NormalizeMode(k.String(keyEmailRedactionMode)),
		UseProxy:           strings.ToLower(strings.TrimSpace(k.String(keyUseProxy))),
		LogLevel:           strings.ToLower(strings.TrimSpace(k.String(keyLogLevel))),
		LogJSON:            k.Bool(keyLogJSON),
	}

	prof, ok := LookupProfile(s.Profile)
	if !ok {
		errs = append(errs, validationErr{key: keyProfile, summary: "Unknown profile.", detail: fmt.Sprintf("profile must be one of %s; got %q", strings.Join(ProfileNames(), ", "), s.Profile)})
		prof, _ = LookupProfile(defaultProfile)
	}

	s.Endpoints = prof.Endpoints
	if k.Exists(keyEndpoints) {
		s.Endpoints = stringList(k.Get(keyEndpoints))
	}
	s.TokenPlacement = prof.TokenPlacement
	if k.Exists(keyTokenPlacement) {
		s.TokenPlacement = TokenPlacement(strings.ToLower(strings.TrimSpace(k.String(keyTokenPlacement))))
	}

	var err *validationErr
	if s.HTTPTimeout, err = durationSetting(k, keyHTTPTimeout, defaultHTTPTimeout); err != nil {
		errs = append(errs, *err)
	}
	if s.RetryMaxAttempts, err = intSetting(k, keyRetryMaxAttempts, prof.MaxAttempts); err != nil {
		errs = append(errs, *err)
	}
	if s.RetryBackoffUnit, err = durationSetting(k, keyRetryBackoffUnit, prof.BackoffUnit); err != nil {
		errs = append(errs, *err)
	}
	return s, errs
}

// durationSetting accepts Go durations ("2s") or bare integers, which are
// read as milliseconds.
func durationSetting(k *koanf.Koanf, key string, def time.Duration) (time.Duration, *validationErr) {
	raw := strings.TrimSpace(k.String(key))
	if raw == "" {
		return def, nil
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &validationErr{key: key, summary: "Invalid duration.", detail: fmt.Sprintf("use values like '500ms', '2s' or a number of milliseconds; got %q", raw)}
	}
	return d, nil
}

func intSetting(k *koanf.Koanf, key string, def int) (int, *validationErr) {
	raw := strings.TrimSpace(k.String(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &validationErr{key: key, summary: "Invalid number.", detail: fmt.Sprintf("expected an integer; got %q", raw)}
	}
	return n, nil
}

// stringList accepts YAML lists and comma separated strings.
func stringList(v interface{}) []string {
	var parts []string
	switch t := v.(type) {
	case []interface{}:
		for _, e := range t {
			parts = append(parts, fmt.Sprint(e))
		}
	case []string:
		parts = t
	case string:
		parts = strings.Split(t, ",")
	default:
		parts = []string{fmt.Sprint(t)}
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func formatSettingsErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = "  * " + e.Error()
	}
	return fmt.Sprintf("%d invalid setting(s):\n%s", len(errs), strings.Join(lines, "\n"))
}
