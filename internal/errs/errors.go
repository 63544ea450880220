package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
    ErrNotFound = errors.New("not_found")
    ErrMethodNotAllowed = errors.New("method_not_allowed")
    // ErrInvalid marks configuration or input that failed validation
    ErrInvalid = errors.New("invalid")
)
