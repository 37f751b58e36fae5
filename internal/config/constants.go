// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import "time"

// Keys recognised in the flat credential and proxy files.
const (
	KeyIDToken   = "ID_TOKEN"
	KeyUserEmail = "USER_EMAIL"
	KeyProxyURL  = "PROXY_URL"
)

// Default file locations, relative to the working directory.
const (
	DefaultCredentialsFile = "token.txt"
	DefaultProxyFile       = "proxy.txt"
)

// Centralized settings keys used by the koanf layers and validation.
const (
	keyProfile            = "profile"
	keyBaseURL            = "base_url"
	keyEndpoints          = "endpoints"
	keyTokenPlacement     = "token_placement"
	keyUserAgent          = "user_agent"
	keyHTTPTimeout        = "http.timeout"
	keyRetryMaxAttempts   = "retry.max_attempts"
	keyRetryBackoffUnit   = "retry.backoff_unit"
	keyEmailRedactionMode = "email_redaction_mode"
	keyUseProxy           = "use_proxy"
	keyLogLevel           = "log.level"
	keyLogJSON            = "log.json"
)

// Centralized settings defaults.
const (
	defaultProfile     = ProfileConnectPing
	defaultBaseURL     = "https://api.gradient.network"
	defaultUserAgent   = "GradientNetwork-Bot/1.0"
	defaultHTTPTimeout = 5 * time.Second
	defaultUseProxy    = UseProxyAsk
	defaultLogLevel    = "warn"
)

// Answers accepted for use_proxy.
const (
	UseProxyAsk = "ask"
	UseProxyYes = "yes"
	UseProxyNo  = "no"
)

// EnvPrefix is shared by every environment variable the tool reads.
const EnvPrefix = "GRADIENT_"

// envKeys maps canonical environment variables to settings keys.
var envKeys = map[string]string{
	"GRADIENT_PROFILE":              keyProfile,
	"GRADIENT_BASE_URL":             keyBaseURL,
	"GRADIENT_ENDPOINTS":            keyEndpoints,
	"GRADIENT_TOKEN_PLACEMENT":      keyTokenPlacement,
	"GRADIENT_USER_AGENT":           keyUserAgent,
	"GRADIENT_HTTP_TIMEOUT":         keyHTTPTimeout,
	"GRADIENT_RETRY_MAX_ATTEMPTS":   keyRetryMaxAttempts,
	"GRADIENT_RETRY_BACKOFF_UNIT":   keyRetryBackoffUnit,
	"GRADIENT_EMAIL_REDACTION_MODE": keyEmailRedactionMode,
	"GRADIENT_USE_PROXY":            keyUseProxy,
	"GRADIENT_LOG_LEVEL":            keyLogLevel,
	"GRADIENT_LOG_JSON":             keyLogJSON,
}

// envAliases are read before the canonical names so the canonical ones win.
var envAliases = map[string]string{
	"GRADIENT_API_URL": keyBaseURL,
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"profile":         keyProfile,
	"base-url":        keyBaseURL,
	"endpoints":       keyEndpoints,
	"token-placement": keyTokenPlacement,
	"user-agent":      keyUserAgent,
	"timeout":         keyHTTPTimeout,
	"max-attempts":    keyRetryMaxAttempts,
	"backoff-unit":    keyRetryBackoffUnit,
	"email-redaction": keyEmailRedactionMode,
	"use-proxy":       keyUseProxy,
	"log-level":       keyLogLevel,
	"log-json":        keyLogJSON,
}
