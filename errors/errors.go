package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) an AppError.
// Returns ErrCodeInternal for any other error.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// --- Common Error Constructors ---

// InvalidConfig creates a new AppError for an invalid configuration value.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: reason,
		Retryable: false,
	}
}

// UnsupportedInputKind creates a new AppError for an unknown input kind.
// Only audio and cepstrum inputs are supported.
func UnsupportedInputKind(kind string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedInputKind,
		Message: fmt.Sprintf("Unsupported input kind %q. Only audio and cepstrum are supported.", kind),
		Details: map[string]any{"input_kind": kind},
	}
}

// ManifestUnreadable creates a new AppError for a manifest that cannot be read.
func ManifestUnreadable(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeManifestUnreadable,
		Message: fmt.Sprintf("Unable to read batch manifest %s.", path),
		Details: map[string]any{"manifest": path},
		Cause:   cause,
	}
}

// InvalidRecord creates a new AppError for a malformed manifest record.
func InvalidRecord(lineNo int, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidRecord,
		Message: fmt.Sprintf("Invalid manifest record at line %d: %s", lineNo, reason),
		Details: map[string]any{"line": lineNo},
	}
}

// InputUnreadable creates a new AppError for a record input that is missing
// or unreadable.
func InputUnreadable(input string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInputUnreadable,
		Message: fmt.Sprintf("Unable to open input %s.", input),
		Details: map[string]any{"input": input},
		Cause:   cause,
	}
}

// EngineUnavailable creates a new AppError for an unreachable decode engine.
func EngineUnavailable(engine string) *AppError {
	return &AppError{
		Code:      ErrCodeEngineUnavailable,
		Message:   fmt.Sprintf("The %s engine is not available.", engine),
		Retryable: true,
		Details:   map[string]any{"engine": engine},
	}
}

// DecodeFailed creates a new AppError for a failed decode of one input.
// The engine's own error is preserved as the cause.
func DecodeFailed(input string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeDecodeFailed,
		Message: fmt.Sprintf("Decoding failed for input %s.", input),
		Details: map[string]any{"input": input},
		Cause:   cause,
	}
}

// Timeout creates a new AppError for an engine call that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The operation took too long.",
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}
