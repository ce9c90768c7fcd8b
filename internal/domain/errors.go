package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyReturned    = errors.New("rental already returned")
	ErrOutOfStock         = errors.New("movie is out of stock")
	ErrEmailInUse         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStoreUnavailable wraps database failures so callers can tell a
	// server-side store problem apart from client errors.
	ErrStoreUnavailable = errors.New("store unavailable")
)
