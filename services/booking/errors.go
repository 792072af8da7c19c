package booking

import "errors"

var (
	// ErrBookingNotFound signals a lookup for a missing booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrTherapistNotFound signals a booking attempt against a missing
	// therapist or therapist profile.
	ErrTherapistNotFound = errors.New("therapist not found")
	// ErrNotParticipant signals that the caller is neither the booking's
	// customer nor its therapist.
	ErrNotParticipant = errors.New("not authorized to act on this booking")
	// ErrInvalidStatus signals a status value outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid booking status")
)
