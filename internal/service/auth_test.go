package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.UserCreate{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
		Phone:    "+2348012345678",
	}

	t.Run("success hashes the password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", ctx, input.Email).Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		svc := NewAuthService(userRepo, newTestJWTManager())
		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, input.Email, user.Email)
		assert.NotEqual(t, input.Password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", ctx, input.Email).Return(true, nil)

		svc := NewAuthService(userRepo, newTestJWTManager())
		_, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	user := &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success returns a token pair", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		svc := NewAuthService(userRepo, newTestJWTManager())
		got, tokens, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "correct-horse"})

		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Positive(t, tokens.ExpiresIn)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, user.Email).Return(nil, nil)

		svc := NewAuthService(userRepo, newTestJWTManager())
		_, _, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "correct-horse"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		svc := NewAuthService(userRepo, newTestJWTManager())
		_, _, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
