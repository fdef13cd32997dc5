package service

import "errors"

// Sentinel errors the HTTP layer maps to status codes.
var (
	// ErrDescriptionRequired rejects report submissions without a description.
	ErrDescriptionRequired = errors.New("description is required")
	// ErrNoReferenceLocation aborts a geo-targeted fan-out when neither the
	// named report nor the named alert resolves to coordinates.
	ErrNoReferenceLocation = errors.New("no reference location")
	// ErrInvalidCredentials covers both unknown usernames and bad passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken signals a registration conflict.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound signals a missing account.
	ErrUserNotFound = errors.New("user not found")
)
