package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (fatal, no retry)
const (
	// ErrCodeInvalidConfig indicates an invalid configuration value.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnsupportedInputKind indicates an unknown input kind setting.
	ErrCodeUnsupportedInputKind ErrorCode = "UNSUPPORTED_INPUT_KIND"
	// ErrCodeManifestUnreadable indicates the batch manifest could not be read.
	ErrCodeManifestUnreadable ErrorCode = "MANIFEST_UNREADABLE"
)

// Per-record errors
const (
	// ErrCodeInvalidRecord indicates a malformed manifest record.
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
	// ErrCodeInputUnreadable indicates a record's input file is missing or unreadable.
	ErrCodeInputUnreadable ErrorCode = "INPUT_UNREADABLE"
)

// Engine errors
const (
	// ErrCodeEngineUnavailable indicates the decode engine is not reachable.
	ErrCodeEngineUnavailable ErrorCode = "ENGINE_UNAVAILABLE"
	// ErrCodeDecodeFailed indicates the decode engine rejected or failed an input.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeTimeout indicates an engine call timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeEngineUnavailable: true,
	ErrCodeTimeout:           true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
