package models

import "time"

// PaymentStatus enumerates payment lifecycle states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records the money side of a booking. Payments are written only by
// the Stripe webhook path; the rest of the service reads and joins them.
type Payment struct {
	ID                    string        `bson:"id" json:"id"`
	BookingID             string        `bson:"booking_id" json:"bookingId"`
	CustomerID            string        `bson:"customer_id" json:"customerId"`
	TherapistID           string        `bson:"therapist_id" json:"therapistId"`
	Amount                float64       `bson:"amount" json:"amount"`
	Currency              string        `bson:"currency" json:"currency"`
	Status                PaymentStatus `bson:"status" json:"status"`
	StripePaymentIntentID string        `bson:"stripe_payment_intent_id,omitempty" json:"stripePaymentIntentId,omitempty"`
	PaymentMethod         string        `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	PaidAt                *time.Time    `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	RefundedAt            *time.Time    `bson:"refunded_at,omitempty" json:"refundedAt,omitempty"`
	CreatedAt             time.Time     `bson:"created_at" json:"createdAt"`
}
