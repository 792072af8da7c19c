package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{coll: database.Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "therapist_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "stripe_payment_intent_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByBookingIDs retrieves at most one payment per booking, keyed by booking ID.
func (r *MongoPaymentRepo) GetByBookingIDs(bookingIDs []string) (map[string]models.Payment, error) {
	payments := make(map[string]models.Payment, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return payments, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bson.M{"$in": bookingIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		// Keep the first payment seen per booking.
		if _, ok := payments[p.BookingID]; !ok {
			payments[p.BookingID] = p
		}
	}
	return payments, cursor.Err()
}

// GetByIntentID retrieves a payment by its Stripe payment-intent ID.
func (r *MongoPaymentRepo) GetByIntentID(intentID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"stripe_payment_intent_id": intentID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for intent %s: %w", intentID, err)
	}
	return &p, nil
}

// UpsertByIntentID inserts or replaces the payment keyed by its Stripe
// payment-intent ID.
func (r *MongoPaymentRepo) UpsertByIntentID(p *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"stripe_payment_intent_id": p.StripePaymentIntentID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, p, opts); err != nil {
		return fmt.Errorf("failed to upsert payment for intent %s: %w", p.StripePaymentIntentID, err)
	}
	return nil
}
