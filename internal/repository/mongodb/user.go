package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(c *Client) *UserRepository {
	return &UserRepository{col: c.db.Collection(usersCollection)}
}

// Create inserts a new user and assigns its id
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByID returns the user or nil when absent
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByEmail returns the user or nil when absent
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether a user with the email is registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// FindAll returns every known user. Documents are decoded loosely and run
// through identity normalization so heterogeneous historical shapes never
// break the reviewer listing; undecodable documents are skipped.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			log.Warn().Err(err).Msg("Skipping undecodable user document")
			continue
		}
		users = append(users, domain.NormalizeIdentity(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error listing users: %w", err)
	}

	return users, nil
}
