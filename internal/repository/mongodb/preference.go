package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/swiftsites/swiftsites-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PreferenceRepository implements domain.PreferenceRepository
type PreferenceRepository struct {
	col *mongo.Collection
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(c *Client) *PreferenceRepository {
	return &PreferenceRepository{col: c.db.Collection(preferencesCollection)}
}

// Insert persists a new handoff record and assigns its id. The write is a
// single atomic document insert; no partial record can be left behind.
func (r *PreferenceRepository) Insert(ctx context.Context, pref *domain.Preference) error {
	res, err := r.col.InsertOne(ctx, pref)
	if err != nil {
		return fmt.Errorf("failed to insert preference: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		pref.ID = oid
	}
	return nil
}

// FindByID returns the record or nil when absent
func (r *PreferenceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Preference, error) {
	var pref domain.Preference
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pref)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find preference: %w", err)
	}
	return &pref, nil
}

// FindOneByUserID returns one record referencing the user, or nil
func (r *PreferenceRepository) FindOneByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Preference, error) {
	var pref domain.Preference
	err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(&pref)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find preference: %w", err)
	}
	return &pref, nil
}
