// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package gradient

import (
	"fmt"

	"github.com/devops-wiz/gradient-connect/internal/redact"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"
)

// redactingLogger adapts hclog to retryablehttp.LeveledLogger and scrubs
// every logged value, since request URLs may carry the token.
type redactingLogger struct {
	l       hclog.Logger
	secrets []string
}

var _ retryablehttp.LeveledLogger = (*redactingLogger)(nil)

func (r *redactingLogger) Error(msg string, kv ...interface{}) { r.l.Error(msg, r.scrub(kv)...) }
func (r *redactingLogger) Info(msg string, kv ...interface{})  { r.l.Info(msg, r.scrub(kv)...) }
func (r *redactingLogger) Debug(msg string, kv ...interface{}) { r.l.Debug(msg, r.scrub(kv)...) }
func (r *redactingLogger) Warn(msg string, kv ...interface{})  { r.l.Warn(msg, r.scrub(kv)...) }

func (r *redactingLogger) scrub(kv []interface{}) []interface{} {
	out := make([]interface{}, len(kv))
	for i, v := range kv {
		if i%2 == 0 {
			out[i] = v
			continue
		}
		out[i] = redact.Values(fmt.Sprint(v), r.secrets...)
	}
	return out
}
