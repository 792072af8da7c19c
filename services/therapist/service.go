package therapist

import (
	"context"
	"fmt"
	"strings"
	"time"

	therapistRepo "glowbook/database/repository/therapist"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultTherapistService is the production implementation of TherapistService.
type DefaultTherapistService struct {
	Repo  therapistRepo.TherapistRepository
	Users userRepo.UserRepository
	Cache IdentityInvalidator // optional
}

// List returns active profiles matching the filters, enriched with the
// owning user's display fields.
func (s *DefaultTherapistService) List(ctx context.Context, f ListFilters) ([]models.TherapistView, error) {
	profiles, err := s.Repo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}

	filtered := profiles[:0]
	location := strings.ToLower(f.Location)
	specialty := strings.ToLower(f.Specialty)
	for _, p := range profiles {
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		if specialty != "" && !strings.Contains(strings.ToLower(p.Specialty), specialty) {
			continue
		}
		filtered = append(filtered, p)
	}
	if f.Limit > 0 && len(filtered) > f.Limit {
		filtered = filtered[:f.Limit]
	}

	ownerIDs := make([]string, 0, len(filtered))
	for _, p := range filtered {
		ownerIDs = append(ownerIDs, p.UserID)
	}
	owners, err := s.Users.GetByIDs(ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("list therapists: failed to fetch users: %w", err)
	}

	views := make([]models.TherapistView, 0, len(filtered))
	for _, p := range filtered {
		view := models.TherapistView{Therapist: p}
		if owner, ok := owners[p.UserID]; ok {
			view.UserName = owner.Name
			view.UserImage = owner.Image
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns one profile enriched with the owning user's contact fields.
func (s *DefaultTherapistService) Get(ctx context.Context, id string) (*models.TherapistView, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	view := &models.TherapistView{Therapist: *p}
	owners, err := s.Users.GetByIDs([]string{p.UserID})
	if err != nil {
		return nil, fmt.Errorf("get therapist: failed to fetch user: %w", err)
	}
	if owner, ok := owners[p.UserID]; ok {
		view.UserName = owner.Name
		view.UserEmail = owner.Email
		view.UserPhone = owner.Phone
		view.UserImage = owner.Image
	}
	return view, nil
}

// GetProfileForUser returns the caller's own profile, or (nil, nil) when the
// caller is not a therapist.
func (s *DefaultTherapistService) GetProfileForUser(ctx context.Context, caller models.User) (*models.Therapist, error) {
	if caller.Role != models.RoleTherapist {
		return nil, nil
	}
	return s.Repo.GetByUserID(caller.ID)
}

// UpsertProfile creates or updates the caller's profile, promoting the
// caller's role to therapist on first submission.
func (s *DefaultTherapistService) UpsertProfile(ctx context.Context, caller models.User, in UpsertInput) (string, error) {
	if caller.Role != models.RoleTherapist {
		update := bson.M{"role": models.RoleTherapist, "updated_at": time.Now()}
		if err := s.Users.UpdateSetDocument(caller.ID, update); err != nil {
			return "", fmt.Errorf("upsert profile: failed to promote role: %w", err)
		}
		s.invalidateIdentity(ctx, caller.Email)
	}

	existing, err := s.Repo.GetByUserID(caller.ID)
	if err != nil {
		return "", fmt.Errorf("upsert profile: %w", err)
	}

	if existing != nil {
		update := bson.M{
			"specialty":      in.Specialty,
			"bio":            in.Bio,
			"experience":     in.Experience,
			"certifications": in.Certifications,
			"location":       in.Location,
			"service_area":   in.ServiceArea,
			"price_range":    in.PriceRange,
			"availability":   in.Availability,
		}
		if err := s.Repo.UpdateSetDocument(existing.ID, update); err != nil {
			return "", fmt.Errorf("upsert profile: %w", err)
		}
		return existing.ID, nil
	}

	profile := &models.Therapist{
		ID:             uuid.New().String(),
		UserID:         caller.ID,
		Specialty:      in.Specialty,
		Bio:            in.Bio,
		Experience:     in.Experience,
		Certifications: in.Certifications,
		Location:       in.Location,
		ServiceArea:    in.ServiceArea,
		Rating:         0,
		ReviewCount:    0,
		PriceRange:     in.PriceRange,
		Availability:   in.Availability,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(profile); err != nil {
		return "", fmt.Errorf("upsert profile: %w", err)
	}
	return profile.ID, nil
}

func (s *DefaultTherapistService) invalidateIdentity(ctx context.Context, email string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, email); err != nil {
		utils.GetLogger().Warn("failed to invalidate identity cache",
			zap.String("email", email),
			zap.Error(err))
	}
}
