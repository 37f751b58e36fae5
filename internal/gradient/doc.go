// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package gradient talks to the network API.
//
// Highlights:
//   - Auth: bearer token as the "token" query parameter, an Authorization
//     header, or both, per profile.
//   - One request per call: the retryablehttp client runs with RetryMax 0 over
//     a non-pooled cleanhttp transport; the retry package owns retries.
//   - Proxy: optional HTTP(S) proxy set on the transport.
//   - Failures: non-2xx, timeouts and connection errors all become
//     *TransportError with redacted status, header hints and body snippet.
package gradient
