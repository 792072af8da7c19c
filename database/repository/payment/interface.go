package paymentRepo

import "glowbook/models"

// PaymentRepository defines methods for payment data access. Payments are
// written only by the Stripe webhook path; queries read and join them.
type PaymentRepository interface {
	// GetByBookingIDs retrieves at most one payment per booking, keyed by
	// booking ID.
	GetByBookingIDs(bookingIDs []string) (map[string]models.Payment, error)
	// GetByIntentID retrieves a payment by its Stripe payment-intent ID.
	// Returns (nil, nil) when no payment matches.
	GetByIntentID(intentID string) (*models.Payment, error)
	// UpsertByIntentID inserts the payment or replaces the one with the same
	// Stripe payment-intent ID.
	UpsertByIntentID(p *models.Payment) error
}
