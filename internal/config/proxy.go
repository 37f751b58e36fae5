// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/devops-wiz/gradient-connect/internal/redact"
)

// ProxyValidationError is returned when proxy use was requested but the
// configured PROXY_URL is missing or malformed.
type ProxyValidationError struct {
	Raw string
}

func (e *ProxyValidationError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s is not set; use the format http(s)://host:port", KeyProxyURL)
	}
	return fmt.Sprintf("invalid %s %q; use the format http(s)://host:port", KeyProxyURL, redact.Secrets(e.Raw))
}

// IsValidProxyURL reports whether s is a well-formed http or https URL with
// a host. The scheme must be lowercase as written. It never panics; malformed
// input yields false.
func IsValidProxyURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// ValidateProxy parses raw for use as the client proxy.
func ValidateProxy(raw string) (*url.URL, error) {
	if !IsValidProxyURL(raw) {
		return nil, &ProxyValidationError{Raw: raw}
	}
	u, _ := url.Parse(raw)
	return u, nil
}
