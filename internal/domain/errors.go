package domain

import "errors"

// Sentinel errors shared by services and repositories. Controllers map them to
// HTTP status codes; anything else is treated as an internal error.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyJoined   = errors.New("already joined this event")
	ErrNoOp            = errors.New("no changes made")
)
