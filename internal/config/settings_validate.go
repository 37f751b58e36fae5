// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// validation per-section
func validateBase(s Settings) []validationErr {
	var errs []validationErr
	u, err := url.Parse(s.BaseURL)
	switch {
	case s.BaseURL == "":
		errs = append(errs, validationErr{key: keyBaseURL, summary: "Missing base URL.", detail: "Provide base_url or set GRADIENT_BASE_URL."})
	case err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		errs = append(errs, validationErr{key: keyBaseURL, summary: "Invalid base URL.", detail: fmt.Sprintf("base_url must be an http(s) URL with a host; got %q", s.BaseURL)})
	}
	if len(s.Endpoints) == 0 {
		errs = append(errs, validationErr{key: keyEndpoints, summary: "Missing endpoints.", detail: "At least one endpoint path is required."})
	}
	for _, e := range s.Endpoints {
		if !strings.HasPrefix(e, "/") {
			errs = append(errs, validationErr{key: keyEndpoints, summary: "Invalid endpoint.", detail: fmt.Sprintf("endpoint paths must start with '/'; got %q", e)})
		}
	}
	if !s.TokenPlacement.Valid() {
		errs = append(errs, validationErr{key: keyTokenPlacement, summary: "Invalid token placement.", detail: fmt.Sprintf("token_placement must be 'query', 'header' or 'both'; got %q", s.TokenPlacement)})
	}
	if s.UserAgent == "" {
		errs = append(errs, validationErr{key: keyUserAgent, summary: "Missing user agent.", detail: "user_agent must not be empty."})
	}
	if s.UseProxy != UseProxyAsk && s.UseProxy != UseProxyYes && s.UseProxy != UseProxyNo {
		errs = append(errs, validationErr{key: keyUseProxy, summary: "Invalid proxy choice.", detail: fmt.Sprintf("use_proxy must be 'ask', 'yes' or 'no'; got %q", s.UseProxy)})
	}
	return errs
}

func validateHTTP(s Settings) []validationErr {
	if s.HTTPTimeout < time.Second || s.HTTPTimeout > 10*time.Minute {
		return []validationErr{{key: keyHTTPTimeout, summary: "Invalid HTTP timeout.", detail: fmt.Sprintf("http.timeout must be between 1s and 10m; got %s", s.HTTPTimeout)}}
	}
	return nil
}

func validateRetry(s Settings) []validationErr {
	var errs []validationErr
	if s.RetryMaxAttempts < 1 || s.RetryMaxAttempts > 10 {
		errs = append(errs, validationErr{key: keyRetryMaxAttempts, summary: "Invalid retry attempts.", detail: fmt.Sprintf("retry.max_attempts must be between 1 and 10; got %d", s.RetryMaxAttempts)})
	}
	if s.RetryBackoffUnit < 0 || s.RetryBackoffUnit > 10*time.Minute {
		errs = append(errs, validationErr{key: keyRetryBackoffUnit, summary: "Invalid retry backoff.", detail: fmt.Sprintf("retry.backoff_unit must be between 0 and 10m; got %s", s.RetryBackoffUnit)})
	}
	return errs
}

func validateLogging(s Settings) []validationErr {
	if hclog.LevelFromString(s.LogLevel) == hclog.NoLevel {
		return []validationErr{{key: keyLogLevel, summary: "Invalid log level.", detail: fmt.Sprintf("log.level must be one of trace, debug, info, warn, error, off; got %q", s.LogLevel)}}
	}
	return nil
}

func validateSettings(s Settings) []validationErr {
	var all []validationErr
	all = append(all, validateBase(s)...)
	if len(all) == 0 { // if base fails, skip noisy follow-ups
		all = append(all, validateHTTP(s)...)
		all = append(all, validateRetry(s)...)
		all = append(all, validateLogging(s)...)
	}
	return all
}
