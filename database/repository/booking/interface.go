package bookingRepo

import (
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
	// no booking matches.
	GetByID(id string) (*models.Booking, error)
	// ListByCustomer retrieves the customer's bookings, optionally filtered
	// by status, sorted by scheduled_date descending.
	ListByCustomer(customerID string, status *models.BookingStatus) ([]models.Booking, error)
	// ListByTherapist retrieves the therapist's bookings, optionally filtered
	// by status, sorted by scheduled_date descending.
	ListByTherapist(therapistID string, status *models.BookingStatus) ([]models.Booking, error)
	// UpdateSetDocument applies a $set patch to the booking with the given ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
