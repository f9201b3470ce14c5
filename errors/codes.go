package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Definition-time errors
const (
	// ErrCodeInvalidShape indicates a claim-shape declaration is internally inconsistent.
	ErrCodeInvalidShape ErrorCode = "INVALID_SHAPE"
	// ErrCodeInvalidDescriptor indicates a provider descriptor breaks the engine contract.
	ErrCodeInvalidDescriptor ErrorCode = "INVALID_DESCRIPTOR"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Registry errors
const (
	// ErrCodeNotFound indicates the requested provider was not registered.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates a provider with the same identifier is registered.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// ErrCodeInternal indicates an unexpected failure.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
