package database

import "errors"

// Store error taxonomy. Repositories wrap driver failures in
// ErrStoreUnavailable so callers can distinguish transport trouble from
// their own mistakes without depending on driver error types.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotAuthorized    = errors.New("not authorized")
)
