package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paymentRepo "glowbook/database/repository/payment"
	subscriptionRepo "glowbook/database/repository/subscription"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// WebhookService applies Stripe events to the payments and subscriptions
// collections. This is the only write path for both; the rest of the service
// reads and joins them.
type WebhookService interface {
	HandleEvent(ctx context.Context, event stripe.Event) error
}

// DefaultWebhookService is the production implementation of WebhookService.
type DefaultWebhookService struct {
	Payments      paymentRepo.PaymentRepository
	Subscriptions subscriptionRepo.SubscriptionRepository
	Notifier      notification.NotificationService
}

// HandleEvent dispatches one verified Stripe event. Unhandled event types
// are acknowledged without effect.
func (s *DefaultWebhookService) HandleEvent(ctx context.Context, event stripe.Event) error {
	switch string(event.Type) {
	case "payment_intent.succeeded":
		return s.applyPaymentIntent(ctx, event, models.PaymentCompleted)
	case "payment_intent.payment_failed":
		return s.applyPaymentIntent(ctx, event, models.PaymentFailed)
	case "charge.refunded":
		return s.applyRefund(ctx, event)
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		return s.applySubscription(ctx, event)
	}
	utils.GetLogger().Debug("ignoring stripe event", zap.String("type", string(event.Type)))
	return nil
}

func (s *DefaultWebhookService) applyPaymentIntent(ctx context.Context, event stripe.Event, status models.PaymentStatus) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("webhook: failed to parse payment intent: %w", err)
	}

	bookingID := intent.Metadata["booking_id"]
	if bookingID == "" {
		// Not a booking payment; nothing to record.
		utils.GetLogger().Warn("payment intent without booking metadata", zap.String("intent", intent.ID))
		return nil
	}

	p, err := s.Payments.GetByIntentID(intent.ID)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	if p == nil {
		p = &models.Payment{
			ID:                    uuid.New().String(),
			StripePaymentIntentID: intent.ID,
			CreatedAt:             time.Now(),
		}
	}

	p.BookingID = bookingID
	p.CustomerID = intent.Metadata["customer_id"]
	p.TherapistID = intent.Metadata["therapist_id"]
	p.Amount = float64(intent.Amount) / 100
	p.Currency = string(intent.Currency)
	p.Status = status
	if len(intent.PaymentMethodTypes) > 0 {
		p.PaymentMethod = intent.PaymentMethodTypes[0]
	}
	if status == models.PaymentCompleted {
		now := time.Now()
		p.PaidAt = &now
	}

	if err := s.Payments.UpsertByIntentID(p); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}

	if status == models.PaymentCompleted && p.TherapistID != "" {
		_, err := s.Notifier.Dispatch(ctx, models.Notification{
			UserID:      p.TherapistID,
			Type:        models.NotificationPaymentReceived,
			Title:       "Payment Received",
			Message:     fmt.Sprintf("Payment of %s %.2f received for your booking.", strings.ToUpper(p.Currency), p.Amount),
			RelatedID:   p.ID,
			RelatedType: models.RelatedPayment,
		})
		if err != nil {
			return fmt.Errorf("webhook: %w", err)
		}
	}
	return nil
}

func (s *DefaultWebhookService) applyRefund(ctx context.Context, event stripe.Event) error {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return fmt.Errorf("webhook: failed to parse charge: %w", err)
	}
	if charge.PaymentIntent == nil || charge.PaymentIntent.ID == "" {
		return nil
	}

	p, err := s.Payments.GetByIntentID(charge.PaymentIntent.ID)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	if p == nil {
		// Refund for a payment this service never recorded.
		return nil
	}

	now := time.Now()
	p.Status = models.PaymentRefunded
	p.RefundedAt = &now
	if err := s.Payments.UpsertByIntentID(p); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	return nil
}

func (s *DefaultWebhookService) applySubscription(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("webhook: failed to parse subscription: %w", err)
	}

	userID := sub.Metadata["user_id"]
	if userID == "" {
		utils.GetLogger().Warn("subscription without user metadata", zap.String("subscription", sub.ID))
		return nil
	}

	record := &models.Subscription{
		ID:                 uuid.New().String(),
		UserID:             userID,
		PlanKey:            sub.Metadata["plan_key"],
		StripeID:           sub.ID,
		Currency:           string(sub.Currency),
		Status:             string(sub.Status),
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		price := sub.Items.Data[0].Price
		record.PriceStripeID = price.ID
		if price.Recurring != nil {
			record.Interval = string(price.Recurring.Interval)
		}
	}
	if string(event.Type) == "customer.subscription.deleted" {
		record.Status = "canceled"
	}

	if err := s.Subscriptions.UpsertByStripeID(record); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	return nil
}
