package booking

import (
	"context"
	"time"

	"glowbook/models"
)

// CreateInput is the payload for creating a booking. The customer is the
// resolved caller, never part of the payload.
type CreateInput struct {
	TherapistID        string
	TherapistProfileID string
	TreatmentType      string
	ScheduledDate      int64 // epoch millis
	ScheduledTime      string
	Duration           int
	Address            string
	Location           models.GeoPoint
	Price              float64
	Currency           string
	Notes              string
}

// ReminderScheduler enqueues a booking reminder to fire at the given time.
type ReminderScheduler interface {
	ScheduleBookingReminder(bookingID string, fireAt time.Time) error
}

// BookingService owns the booking lifecycle and the enriched booking queries.
type BookingService interface {
	// Create inserts a pending booking for the caller and notifies the
	// therapist. Returns the new booking's ID.
	Create(ctx context.Context, caller models.User, in CreateInput) (string, error)
	// UpdateStatus patches the booking status. The caller must be the
	// booking's customer or therapist; the other party is notified on
	// confirmed, cancelled and completed.
	UpdateStatus(ctx context.Context, caller models.User, bookingID string, status models.BookingStatus) error
	// ListForCustomer returns the customer's bookings enriched with
	// therapist and payment info, sorted by scheduled date descending.
	ListForCustomer(ctx context.Context, customerID string, status *models.BookingStatus) ([]models.BookingView, error)
	// ListForTherapist returns the therapist's bookings enriched with
	// customer and payment info, sorted by scheduled date descending.
	ListForTherapist(ctx context.Context, therapistID string, status *models.BookingStatus) ([]models.BookingView, error)
}
