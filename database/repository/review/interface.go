package reviewRepo

import "glowbook/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(rv *models.Review) error
	// GetByBookingID retrieves the review left on a booking. Returns
	// (nil, nil) when the booking has no review.
	GetByBookingID(bookingID string) (*models.Review, error)
	// ListByTherapist retrieves a therapist's reviews, newest first.
	ListByTherapist(therapistID string) ([]models.Review, error)
	// AggregateForTherapist computes the average rating and review count for
	// a therapist.
	AggregateForTherapist(therapistID string) (avg float64, count int64, err error)
}
