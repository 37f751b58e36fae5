// Package testhelpers provides shared testing utilities used across unit
// tests.
//
// Intended use:
//   - Fixtures: credential and proxy files written to a per-test temp dir.
//   - HTTP tests: a scripted httptest server that counts hits and captures
//     requests, usable both as the API and as a forward proxy.
//   - Retry tests: a recording reporter and a fake sleeper that never blocks.
//
// Conventions:
//   - Keep dependencies minimal and avoid importing production packages.
//   - Never leak secrets in failure messages; tests assert on redacted output.
//
// This package is for test code and is not part of the tool's public API.
package testhelpers
