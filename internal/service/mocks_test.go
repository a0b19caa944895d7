package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockAdminRepository mocks the AdminRepository interface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// MockPreferenceRepository mocks the PreferenceRepository interface
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Insert(ctx context.Context, pref *domain.Preference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Preference, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) FindOneByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

// MockNotifier mocks the notify.Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NewLeadSubmitted(user domain.User, pref domain.Preference) error {
	args := m.Called(user, pref)
	return args.Error(0)
}
