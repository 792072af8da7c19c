package subscriptionRepo

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

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo creates a new instance of SubscriptionRepository using MongoDB.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	repo := &MongoSubscriptionRepo{coll: database.Collection("subscriptions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create subscription indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSubscriptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "stripe_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's subscription.
func (r *MongoSubscriptionRepo) GetByUserID(userID string) (*models.Subscription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Subscription
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription for user %s: %w", userID, err)
	}
	return &s, nil
}

// UpsertByStripeID inserts or replaces the subscription keyed by its Stripe ID.
func (r *MongoSubscriptionRepo) UpsertByStripeID(s *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"stripe_id": s.StripeID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, s, opts); err != nil {
		return fmt.Errorf("failed to upsert subscription %s: %w", s.StripeID, err)
	}
	return nil
}
