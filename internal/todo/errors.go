package todo

import "errors"

var (
	// ErrValidation marks malformed input, e.g. an empty item name.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced document that does not exist. None of the
	// list operations return it for deletes; it is reserved for callers that
	// require existence.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable wraps every failure reported by the document store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
