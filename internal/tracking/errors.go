package tracking

// Code is a machine-readable error code.
type Code string

const (
	CodeNotFound               Code = "NOT_FOUND"
	CodeVerificationFailed     Code = "VERIFICATION_FAILED"
	CodeInvalidStateTransition Code = "INVALID_STATE_TRANSITION"

	// CodeValidation is reserved for future input checks; nothing emits it
	// today because registration and funding accept their inputs as-is.
	CodeValidation Code = "VALIDATION"
)

// Error is the domain error type carrying a code, a human-readable message,
// and an optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates a domain error with a code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates a domain error that wraps an underlying cause.
func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinel values for errors.Is matching by code.
var (
	ErrNotFound               = NewError(CodeNotFound, "not found")
	ErrVerificationFailed     = NewError(CodeVerificationFailed, "verification failed")
	ErrInvalidStateTransition = NewError(CodeInvalidStateTransition, "invalid state transition")
)
