package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	categories *mongo.Collection
	stats      *mongo.Collection
	plans      *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		categories: database.Collection("categories"),
		stats:      database.Collection("stats"),
		plans:      database.Collection("plans"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create category indexes: %w", err)
	}
	if _, err := r.stats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create stats indexes: %w", err)
	}
	if _, err := r.plans.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}
	return nil
}

// ListCategories retrieves all categories.
func (r *MongoCatalogRepo) ListCategories() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Category
	for cursor.Next(ctx) {
		var c models.Category
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		out = append(out, c)
	}
	return out, cursor.Err()
}

// GetStatValues retrieves the marketing counters keyed by stat name.
func (r *MongoCatalogRepo) GetStatValues() (map[string]int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.stats.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer cursor.Close(ctx)

	values := make(map[string]int64)
	for cursor.Next(ctx) {
		var s models.Stat
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode stat: %w", err)
		}
		values[s.Key] = s.Value
	}
	return values, cursor.Err()
}

// ListPlans retrieves all subscription plans.
func (r *MongoCatalogRepo) ListPlans() ([]models.Plan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.plans.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Plan
	for cursor.Next(ctx) {
		var p models.Plan
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode plan: %w", err)
		}
		out = append(out, p)
	}
	return out, cursor.Err()
}
