package domain

import "errors"

var (
	// ErrSessionNotFound is returned by a session repository when no token
	// has been persisted.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionInvalidated replaces the underlying failure once a request
	// outcome has been classified as proof the token is dead. The raw status
	// is deliberately swallowed; callers surface a re-login prompt instead.
	ErrSessionInvalidated = errors.New("session invalidated, please sign in again")

	// ErrClearNotConfirmed is returned when a history clear is attempted
	// with a missing or mismatched confirmation token.
	ErrClearNotConfirmed = errors.New("history clear not confirmed")
)
