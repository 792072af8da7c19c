package payment

import (
	"context"
	"encoding/json"
	"testing"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakePaymentRepo struct {
	byIntent map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byIntent: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) GetByBookingIDs(bookingIDs []string) (map[string]models.Payment, error) {
	out := make(map[string]models.Payment)
	for _, p := range r.byIntent {
		for _, id := range bookingIDs {
			if p.BookingID == id {
				out[id] = *p
			}
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByIntentID(intentID string) (*models.Payment, error) {
	p, ok := r.byIntent[intentID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) UpsertByIntentID(p *models.Payment) error {
	copied := *p
	r.byIntent[p.StripePaymentIntentID] = &copied
	return nil
}

type fakeSubscriptionRepo struct {
	byStripeID map[string]*models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{byStripeID: make(map[string]*models.Subscription)}
}

func (r *fakeSubscriptionRepo) GetByUserID(userID string) (*models.Subscription, error) {
	for _, s := range r.byStripeID {
		if s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) UpsertByStripeID(s *models.Subscription) error {
	copied := *s
	r.byStripeID[s.StripeID] = &copied
	return nil
}

type fakeNotifier struct {
	dispatched []models.Notification
}

func (n *fakeNotifier) Dispatch(ctx context.Context, notif models.Notification) (*models.Notification, error) {
	n.dispatched = append(n.dispatched, notif)
	return &notif, nil
}

func (n *fakeNotifier) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int64) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) UnreadCount(ctx context.Context, userID string) (int64, error) { return 0, nil }

func (n *fakeNotifier) MarkRead(ctx context.Context, callerID, notificationID string) error {
	return nil
}

func (n *fakeNotifier) MarkAllRead(ctx context.Context, callerID string) (int64, error) {
	return 0, nil
}

type webhookFixture struct {
	svc           *DefaultWebhookService
	payments      *fakePaymentRepo
	subscriptions *fakeSubscriptionRepo
	notifier      *fakeNotifier
}

func newWebhookFixture() *webhookFixture {
	f := &webhookFixture{
		payments:      newFakePaymentRepo(),
		subscriptions: newFakeSubscriptionRepo(),
		notifier:      &fakeNotifier{},
	}
	f.svc = &DefaultWebhookService{
		Payments:      f.payments,
		Subscriptions: f.subscriptions,
		Notifier:      f.notifier,
	}
	return f
}

func stripeEvent(t *testing.T, eventType string, object any) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestPaymentIntentSucceeded(t *testing.T) {
	f := newWebhookFixture()

	event := stripeEvent(t, "payment_intent.succeeded", map[string]any{
		"id":                   "pi_123",
		"amount":               8000,
		"currency":             "usd",
		"payment_method_types": []string{"card"},
		"metadata": map[string]string{
			"booking_id":   "b-1",
			"customer_id":  "cust-1",
			"therapist_id": "ther-1",
		},
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), event))

	p, err := f.payments.GetByIntentID("pi_123")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "b-1", p.BookingID)
	assert.Equal(t, models.PaymentCompleted, p.Status)
	assert.Equal(t, 80.0, p.Amount, "amount is converted from cents")
	assert.Equal(t, "usd", p.Currency)
	assert.Equal(t, "card", p.PaymentMethod)
	require.NotNil(t, p.PaidAt)

	require.Len(t, f.notifier.dispatched, 1)
	n := f.notifier.dispatched[0]
	assert.Equal(t, "ther-1", n.UserID)
	assert.Equal(t, models.NotificationPaymentReceived, n.Type)
	assert.Equal(t, "Payment Received", n.Title)
	assert.Contains(t, n.Message, "USD 80.00")
}

func TestPaymentIntentFailed(t *testing.T) {
	f := newWebhookFixture()

	event := stripeEvent(t, "payment_intent.payment_failed", map[string]any{
		"id":       "pi_456",
		"amount":   5000,
		"currency": "usd",
		"metadata": map[string]string{
			"booking_id":   "b-2",
			"customer_id":  "cust-1",
			"therapist_id": "ther-1",
		},
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), event))

	p, _ := f.payments.GetByIntentID("pi_456")
	require.NotNil(t, p)
	assert.Equal(t, models.PaymentFailed, p.Status)
	assert.Nil(t, p.PaidAt)
	assert.Empty(t, f.notifier.dispatched, "failed payments notify nobody")
}

func TestPaymentIntentWithoutBookingIsIgnored(t *testing.T) {
	f := newWebhookFixture()

	event := stripeEvent(t, "payment_intent.succeeded", map[string]any{
		"id":     "pi_789",
		"amount": 1000,
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), event))

	p, _ := f.payments.GetByIntentID("pi_789")
	assert.Nil(t, p)
}

func TestSucceededUpdatesExistingRecord(t *testing.T) {
	f := newWebhookFixture()

	// A prior payment_failed left a record behind.
	require.NoError(t, f.payments.UpsertByIntentID(&models.Payment{
		ID:                    "pay-1",
		BookingID:             "b-1",
		StripePaymentIntentID: "pi_123",
		Status:                models.PaymentFailed,
	}))

	event := stripeEvent(t, "payment_intent.succeeded", map[string]any{
		"id":       "pi_123",
		"amount":   8000,
		"currency": "usd",
		"metadata": map[string]string{"booking_id": "b-1", "therapist_id": "ther-1"},
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), event))

	p, _ := f.payments.GetByIntentID("pi_123")
	require.NotNil(t, p)
	assert.Equal(t, "pay-1", p.ID, "the existing record is updated, not duplicated")
	assert.Equal(t, models.PaymentCompleted, p.Status)
}

func TestChargeRefunded(t *testing.T) {
	f := newWebhookFixture()

	require.NoError(t, f.payments.UpsertByIntentID(&models.Payment{
		ID:                    "pay-1",
		BookingID:             "b-1",
		StripePaymentIntentID: "pi_123",
		Status:                models.PaymentCompleted,
	}))

	event := stripeEvent(t, "charge.refunded", map[string]any{
		"id":             "ch_1",
		"payment_intent": map[string]any{"id": "pi_123"},
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), event))

	p, _ := f.payments.GetByIntentID("pi_123")
	require.NotNil(t, p)
	assert.Equal(t, models.PaymentRefunded, p.Status)
	assert.NotNil(t, p.RefundedAt)
}

func TestChargeRefundedUnknownPayment(t *testing.T) {
	f := newWebhookFixture()

	event := stripeEvent(t, "charge.refunded", map[string]any{
		"id":             "ch_2",
		"payment_intent": map[string]any{"id": "pi_unknown"},
	})
	assert.NoError(t, f.svc.HandleEvent(context.Background(), event))
}

func TestSubscriptionLifecycle(t *testing.T) {
	f := newWebhookFixture()

	created := stripeEvent(t, "customer.subscription.created", map[string]any{
		"id":       "sub_1",
		"status":   "active",
		"currency": "usd",
		"metadata": map[string]string{"user_id": "u-1", "plan_key": "pro"},
		"items": map[string]any{
			"data": []map[string]any{
				{"price": map[string]any{"id": "price_1", "recurring": map[string]any{"interval": "month"}}},
			},
		},
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), created))

	s, err := f.subscriptions.GetByUserID("u-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "pro", s.PlanKey)
	assert.Equal(t, "active", s.Status)
	assert.Equal(t, "price_1", s.PriceStripeID)
	assert.Equal(t, "month", s.Interval)

	deleted := stripeEvent(t, "customer.subscription.deleted", map[string]any{
		"id":       "sub_1",
		"status":   "active",
		"metadata": map[string]string{"user_id": "u-1", "plan_key": "pro"},
	})
	require.NoError(t, f.svc.HandleEvent(context.Background(), deleted))

	s, _ = f.subscriptions.GetByUserID("u-1")
	require.NotNil(t, s)
	assert.Equal(t, "canceled", s.Status)
}

func TestUnhandledEventIsAcknowledged(t *testing.T) {
	f := newWebhookFixture()

	event := stripeEvent(t, "invoice.finalized", map[string]any{"id": "in_1"})
	assert.NoError(t, f.svc.HandleEvent(context.Background(), event))
	assert.Empty(t, f.payments.byIntent)
}
