package review

import (
	"context"
	"fmt"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	reviewRepo "glowbook/database/repository/review"
	therapistRepo "glowbook/database/repository/therapist"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateInput is the payload for leaving a review.
type CreateInput struct {
	BookingID string
	Rating    int
	Comment   string
}

// ReviewService owns customer reviews and the therapist rating rollup.
type ReviewService interface {
	// Create stores a review on a completed booking owned by the caller and
	// refreshes the therapist's rating and review count.
	Create(ctx context.Context, caller models.User, in CreateInput) (*models.Review, error)
	// ListForTherapist returns a therapist's reviews, newest first.
	ListForTherapist(ctx context.Context, therapistID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo       reviewRepo.ReviewRepository
	Bookings   bookingRepo.BookingRepository
	Therapists therapistRepo.TherapistRepository
}

// Create stores a review on a completed booking owned by the caller.
func (s *DefaultReviewService) Create(ctx context.Context, caller models.User, in CreateInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create review: failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.CustomerID != caller.ID {
		return nil, ErrNotCustomer
	}
	if b.Status != models.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	existing, err := s.Repo.GetByBookingID(in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	rv := &models.Review{
		ID:          uuid.New().String(),
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		TherapistID: b.TherapistID,
		Rating:      in.Rating,
		Comment:     in.Comment,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(rv); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.refreshRating(b)
	return rv, nil
}

// refreshRating rolls the review aggregate up onto the therapist profile.
// Failures are logged only; the review itself already landed.
func (s *DefaultReviewService) refreshRating(b *models.Booking) {
	logger := utils.GetLogger()

	avg, count, err := s.Repo.AggregateForTherapist(b.TherapistID)
	if err != nil {
		logger.Warn("failed to aggregate reviews", zap.String("therapistId", b.TherapistID), zap.Error(err))
		return
	}
	update := bson.M{"rating": avg, "review_count": count}
	if err := s.Therapists.UpdateSetDocument(b.TherapistProfileID, update); err != nil {
		logger.Warn("failed to update therapist rating", zap.String("profileId", b.TherapistProfileID), zap.Error(err))
	}
}

// ListForTherapist returns a therapist's reviews, newest first.
func (s *DefaultReviewService) ListForTherapist(ctx context.Context, therapistID string) ([]models.Review, error) {
	return s.Repo.ListByTherapist(therapistID)
}
