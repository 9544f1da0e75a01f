// Package errors provides unified error handling for decodekit.
// It implements structured error types with machine-readable codes,
// cause wrapping, and retryable detection, so callers can distinguish
// static misconfiguration from per-record and engine failures.
package errors
