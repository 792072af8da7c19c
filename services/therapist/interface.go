package therapist

import (
	"context"

	"glowbook/models"
)

// ListFilters narrows the public therapist listing. Location and Specialty
// are case-insensitive substring matches; Limit of 0 means no truncation.
type ListFilters struct {
	Location  string
	Specialty string
	Limit     int
}

// UpsertInput is the payload for creating or updating the caller's profile.
type UpsertInput struct {
	Specialty      string
	Bio            string
	Experience     string
	Certifications []string
	Location       string
	ServiceArea    []string
	PriceRange     models.PriceRange
	Availability   []models.DayAvailability
}

// IdentityInvalidator evicts a cached resolved caller after a role change.
type IdentityInvalidator interface {
	Invalidate(ctx context.Context, email string) error
}

// TherapistService owns the therapist profile surface.
type TherapistService interface {
	// List returns active profiles matching the filters, enriched with the
	// owning user's display fields.
	List(ctx context.Context, f ListFilters) ([]models.TherapistView, error)
	// Get returns one profile enriched with the owning user's contact
	// fields, or ErrProfileNotFound.
	Get(ctx context.Context, id string) (*models.TherapistView, error)
	// GetProfileForUser returns the caller's own profile, or (nil, nil) when
	// the caller is not a therapist.
	GetProfileForUser(ctx context.Context, caller models.User) (*models.Therapist, error)
	// UpsertProfile creates or updates the caller's profile, promoting the
	// caller's role to therapist on first submission. Returns the profile ID.
	UpsertProfile(ctx context.Context, caller models.User, in UpsertInput) (string, error)
}
