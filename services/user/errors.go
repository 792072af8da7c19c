package user

import "errors"

var (
	// ErrEmailTaken signals a registration attempt with an existing email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials signals a failed email/password authentication.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound signals a lookup for a missing user record.
	ErrUserNotFound = errors.New("user not found")
)
