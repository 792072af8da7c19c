package models

import "time"

// Review is a customer's rating of a completed booking. One per booking.
type Review struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"bookingId"`
	CustomerID  string    `bson:"customer_id" json:"customerId"`
	TherapistID string    `bson:"therapist_id" json:"therapistId"`
	Rating      int       `bson:"rating" json:"rating"` // 1..5
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
