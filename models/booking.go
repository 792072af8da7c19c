package models

import "time"

// BookingStatus enumerates the booking lifecycle states.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is a final state.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// GeoPoint is the service address coordinates. Both fields are optional.
type GeoPoint struct {
	Lat *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng *float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Booking is a scheduled door-to-door treatment between a customer and a
// therapist. Created in pending state; mutated only via status updates.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	CustomerID         string        `bson:"customer_id" json:"customerId"`
	TherapistID        string        `bson:"therapist_id" json:"therapistId"`
	TherapistProfileID string        `bson:"therapist_profile_id" json:"therapistProfileId"`
	TreatmentType      string        `bson:"treatment_type" json:"treatmentType"`
	ScheduledDate      int64         `bson:"scheduled_date" json:"scheduledDate"` // epoch millis
	ScheduledTime      string        `bson:"scheduled_time" json:"scheduledTime"` // "HH:MM"
	Duration           int           `bson:"duration" json:"duration"`            // minutes
	Address            string        `bson:"address" json:"address"`
	Location           GeoPoint      `bson:"location" json:"location"`
	Status             BookingStatus `bson:"status" json:"status"`
	Price              float64       `bson:"price" json:"price"`
	Currency           string        `bson:"currency" json:"currency"`
	Notes              string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updatedAt"`
}
