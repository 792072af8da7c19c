package therapistRepo

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

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new instance of TherapistRepository using MongoDB.
func NewMongoTherapistRepo() TherapistRepository {
	repo := &MongoTherapistRepo{coll: database.Collection("therapists")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create therapist indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTherapistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "specialty", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new profile document.
func (r *MongoTherapistRepo) Create(t *models.Therapist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create therapist profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID.
func (r *MongoTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserID retrieves the profile owned by the given user.
func (r *MongoTherapistRepo) GetByUserID(userID string) (*models.Therapist, error) {
	return r.findOne(bson.M{"user_id": userID})
}

func (r *MongoTherapistRepo) findOne(filter bson.M) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Therapist
	if err := r.coll.FindOne(ctx, filter).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch therapist profile: %w", err)
	}
	return &t, nil
}

// GetByIDs retrieves the profiles with the given IDs, keyed by ID.
func (r *MongoTherapistRepo) GetByIDs(ids []string) (map[string]models.Therapist, error) {
	profiles := make(map[string]models.Therapist, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist profiles: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var t models.Therapist
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode therapist profile: %w", err)
		}
		profiles[t.ID] = t
	}
	return profiles, cursor.Err()
}

// ListActive retrieves all profiles with is_active=true.
func (r *MongoTherapistRepo) ListActive() ([]models.Therapist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list active therapists: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Therapist
	for cursor.Next(ctx) {
		var t models.Therapist
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode therapist profile: %w", err)
		}
		out = append(out, t)
	}
	return out, cursor.Err()
}

// UpdateSetDocument applies a $set patch to the profile with the given ID.
func (r *MongoTherapistRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update therapist profile with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist profile with id %s not found", id)
	}
	return nil
}
