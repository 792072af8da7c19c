package user

import (
	"context"

	"glowbook/models"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// UserService defines account operations. Identity resolution for request
// handling lives in the auth middleware; this service owns the records.
type UserService interface {
	// Register creates a customer account and returns it with a signed token.
	Register(ctx context.Context, in RegisterInput) (*models.User, string, error)
	// Authenticate verifies credentials and returns the user with a signed token.
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	// GetUserByID retrieves a user record.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// UpdateFCMToken stores the device push token on the user record.
	UpdateFCMToken(ctx context.Context, userID, token string) error
}
