package userRepo

import (
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no user matches.
	GetByEmail(email string) (*models.User, error)
	// GetByIDs retrieves the users with the given IDs, keyed by ID.
	GetByIDs(ids []string) (map[string]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSetDocument applies a $set patch to the user with the given ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
