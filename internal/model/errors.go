package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an email unique constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrTokenInvalid is returned when a token signature or shape is wrong.
	ErrTokenInvalid = errors.New("access token invalid")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("access token expired")
)
