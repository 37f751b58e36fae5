// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
)

// Credentials identify the node against the network API.
type Credentials struct {
	Token string
	Email string
}

// CredentialsError reports required credential keys that are missing or empty.
type CredentialsError struct {
	File    string
	Missing []string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("%s must be set in %s", strings.Join(e.Missing, " and "), e.File)
}

// CredentialsFromMap extracts ID_TOKEN and USER_EMAIL. Both are required.
func CredentialsFromMap(file string, m Map) (Credentials, error) {
	c := Credentials{
		Token: m.Get(KeyIDToken),
		Email: m.Get(KeyUserEmail),
	}
	var missing []string
	if c.Token == "" {
		missing = append(missing, KeyIDToken)
	}
	if c.Email == "" {
		missing = append(missing, KeyUserEmail)
	}
	if len(missing) > 0 {
		return Credentials{}, &CredentialsError{File: file, Missing: missing}
	}
	return c, nil
}

// ProxyFromMap returns the optional PROXY_URL value.
func ProxyFromMap(m Map) string {
	return m.Get(KeyProxyURL)
}
