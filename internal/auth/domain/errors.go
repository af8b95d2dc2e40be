package domain

import "errors"

var (
	// ErrDuplicateIdentity is returned by signup when the email is taken.
	ErrDuplicateIdentity = errors.New("email already registered")

	// ErrInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrPasswordTooLong is returned by signup for a password bcrypt cannot
	// hash in full (more than 72 bytes).
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

	// ErrUnauthenticated is returned when a presented token cannot be turned
	// into an existing identity, whatever the reason.
	ErrUnauthenticated = errors.New("could not validate credentials")
)
