package model

import "errors"

var (
	// ErrNotFound is returned when a looked-up entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned on registration with a duplicate username.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken is returned on registration with a duplicate email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	// Callers must not be able to tell which check failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInactiveAccount is returned when a deactivated user logs in.
	ErrInactiveAccount = errors.New("inactive user")

	// ErrInvalidToken is the single opaque rejection for every token decode
	// failure. The specific reason (expiry, bad signature, missing claims)
	// is logged server-side only.
	ErrInvalidToken = errors.New("could not validate credentials")

	// ErrValidation marks caller input that violates declared constraints.
	// It always surfaces as a client error, never degrades to a fallback.
	ErrValidation = errors.New("validation error")
)
