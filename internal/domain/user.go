package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a prospective client account. Handoff records reference users;
// the review directory lists them for the admin.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Admin is a reviewer account authorized to read submitted records.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserCreate represents user registration data
type UserCreate struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminCredentials carries admin login/registration data. AdminKey is the
// shared secret gating both operations.
type AdminCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	AdminKey string `json:"adminKey" validate:"required"`
}

// TokenPair represents JWT token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserWithStatus is one row of the reviewer listing: a user plus whether a
// handoff record references them.
type UserWithStatus struct {
	User
	HasSubmittedPreference bool                `json:"hasSubmittedPreference"`
	PreferenceID           *primitive.ObjectID `json:"preferenceId"`
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]User, error)
}

// AdminRepository defines the interface for admin storage
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
