package service

import "errors"

// Sentinel errors shared across services. Operation-specific errors live
// next to the operation that produces them.
var (
	// ErrForbidden is returned when the caller's role or ownership does
	// not permit the operation.
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidState is returned when the target record's current status
	// does not allow the requested transition.
	ErrInvalidState = errors.New("operation not valid for current status")

	// ErrInvalidRequest is returned when the request fails field validation.
	ErrInvalidRequest = errors.New("invalid request")
)
