package models

// Plan keys and billing intervals.
const (
	PlanFree = "free"
	PlanPro  = "pro"

	IntervalMonth = "month"
	IntervalYear  = "year"
)

// PlanPrice is one Stripe price point of a plan.
type PlanPrice struct {
	StripeID string  `bson:"stripe_id" json:"stripeId"`
	Amount   float64 `bson:"amount" json:"amount"`
}

// Plan is a subscription tier offered to therapists. Seeded out of band,
// read-only for this service.
type Plan struct {
	ID          string                          `bson:"id" json:"id"`
	Key         string                          `bson:"key" json:"key"`
	StripeID    string                          `bson:"stripe_id" json:"stripeId"`
	Name        string                          `bson:"name" json:"name"`
	Description string                          `bson:"description" json:"description"`
	Prices      map[string]map[string]PlanPrice `bson:"prices" json:"prices"` // interval -> currency -> price
}

// Subscription tracks a user's Stripe subscription. Maintained exclusively
// by the Stripe webhook.
type Subscription struct {
	ID                 string `bson:"id" json:"id"`
	UserID             string `bson:"user_id" json:"userId"`
	PlanKey            string `bson:"plan_key" json:"planKey"`
	PriceStripeID      string `bson:"price_stripe_id" json:"priceStripeId"`
	StripeID           string `bson:"stripe_id" json:"stripeId"`
	Currency           string `bson:"currency" json:"currency"`
	Interval           string `bson:"interval" json:"interval"`
	Status             string `bson:"status" json:"status"`
	CurrentPeriodStart int64  `bson:"current_period_start" json:"currentPeriodStart"`
	CurrentPeriodEnd   int64  `bson:"current_period_end" json:"currentPeriodEnd"`
	CancelAtPeriodEnd  bool   `bson:"cancel_at_period_end" json:"cancelAtPeriodEnd"`
}
