package subscriptionRepo

import "glowbook/models"

// SubscriptionRepository defines methods for subscription data access.
// Subscriptions are maintained exclusively by the Stripe webhook.
type SubscriptionRepository interface {
	// GetByUserID retrieves a user's subscription. Returns (nil, nil) when
	// the user has none.
	GetByUserID(userID string) (*models.Subscription, error)
	// UpsertByStripeID inserts the subscription or replaces the one with the
	// same Stripe subscription ID.
	UpsertByStripeID(s *models.Subscription) error
}
