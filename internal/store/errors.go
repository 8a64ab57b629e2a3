package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when creating a user whose email is
	// already registered (unique constraint at the store level).
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrNoUserWasFound is returned by user lookups and single-row updates
	// that match no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoPropertyWasFound is returned by property lookups by id that match
	// no listing.
	ErrNoPropertyWasFound = errors.New("no property was found")
)
