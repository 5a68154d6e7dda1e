package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists in the
	// database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoreUnavailable is returned (wrapped) when the database cannot be
	// reached at all, so that callers can distinguish "bad credentials" from
	// "cannot reach database".
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrLastUsernameNotFound is returned by the client local store when no
	// username has been remembered yet.
	ErrLastUsernameNotFound = errors.New("no remembered username")
)
