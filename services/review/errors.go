package review

import "errors"

var (
	// ErrBookingNotFound signals a review against a missing booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotCustomer signals that the caller is not the booking's customer.
	ErrNotCustomer = errors.New("only the booking's customer can leave a review")
	// ErrBookingNotCompleted signals a review on a booking that has not completed.
	ErrBookingNotCompleted = errors.New("booking is not completed yet")
	// ErrAlreadyReviewed signals a second review on the same booking.
	ErrAlreadyReviewed = errors.New("booking already reviewed")
	// ErrInvalidRating signals a rating outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
