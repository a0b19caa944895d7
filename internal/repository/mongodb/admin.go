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

// AdminRepository implements domain.AdminRepository
type AdminRepository struct {
	col *mongo.Collection
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(c *Client) *AdminRepository {
	return &AdminRepository{col: c.db.Collection(adminsCollection)}
}

// Create inserts a new admin and assigns its id
func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	res, err := r.col.InsertOne(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

// FindByID returns the admin or nil when absent
func (r *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// FindByEmail returns the admin or nil when absent
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}
