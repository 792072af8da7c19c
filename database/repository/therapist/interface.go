package therapistRepo

import (
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TherapistRepository defines methods for therapist profile data access.
type TherapistRepository interface {
	// GetByID retrieves a profile by its unique ID. Returns (nil, nil) when
	// no profile matches.
	GetByID(id string) (*models.Therapist, error)
	// GetByUserID retrieves the profile owned by the given user. Returns
	// (nil, nil) when the user has no profile.
	GetByUserID(userID string) (*models.Therapist, error)
	// GetByIDs retrieves the profiles with the given IDs, keyed by ID.
	GetByIDs(ids []string) (map[string]models.Therapist, error)
	// ListActive retrieves all profiles with is_active=true.
	ListActive() ([]models.Therapist, error)
	// Create inserts a new profile.
	Create(t *models.Therapist) error
	// UpdateSetDocument applies a $set patch to the profile with the given ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
