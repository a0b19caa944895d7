package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPreferenceService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	user := &domain.User{ID: userID, Name: "Ada", Email: "ada@example.com"}

	input := domain.PreferenceCreate{
		UserID:      userID.Hex(),
		Title:       "Project: Bubey's Bite",
		Description: "Full proposal text",
		Phone:       "+2348012345678",
	}

	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		prefRepo := new(MockPreferenceRepository)

		userRepo.On("FindByID", ctx, userID).Return(user, nil)
		prefRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Preference")).Return(nil)

		svc := NewPreferenceService(userRepo, prefRepo, nil)
		pref, err := svc.Submit(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, userID, pref.UserID)
		assert.Equal(t, "Project: Bubey's Bite", pref.Title)
		assert.Equal(t, "Full proposal text", pref.Description)
		assert.WithinDuration(t, time.Now(), pref.SubmittedAt, time.Second)

		userRepo.AssertExpectations(t)
		prefRepo.AssertExpectations(t)
	})

	t.Run("unknown user writes nothing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		prefRepo := new(MockPreferenceRepository)

		userRepo.On("FindByID", ctx, userID).Return(nil, nil)

		svc := NewPreferenceService(userRepo, prefRepo, nil)
		_, err := svc.Submit(ctx, input)

		assert.ErrorIs(t, err, ErrUserNotFound)
		prefRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("malformed user id writes nothing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		prefRepo := new(MockPreferenceRepository)

		svc := NewPreferenceService(userRepo, prefRepo, nil)
		_, err := svc.Submit(ctx, domain.PreferenceCreate{UserID: "not-an-object-id", Title: "t", Description: "d"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		prefRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		prefRepo := new(MockPreferenceRepository)

		userRepo.On("FindByID", ctx, userID).Return(user, nil)
		prefRepo.On("Insert", ctx, mock.Anything).Return(errors.New("write concern"))

		svc := NewPreferenceService(userRepo, prefRepo, nil)
		_, err := svc.Submit(ctx, input)
		assert.Error(t, err)
	})

	t.Run("notifier is called after the record is durable", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		prefRepo := new(MockPreferenceRepository)
		notifier := new(MockNotifier)

		userRepo.On("FindByID", ctx, userID).Return(user, nil)
		prefRepo.On("Insert", ctx, mock.Anything).Return(nil)

		var wg sync.WaitGroup
		wg.Add(1)
		notifier.On("NewLeadSubmitted", mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.Preference")).
			Run(func(args mock.Arguments) { wg.Done() }).
			Return(nil)

		svc := NewPreferenceService(userRepo, prefRepo, notifier)
		_, err := svc.Submit(ctx, input)
		assert.NoError(t, err)

		wg.Wait()
		notifier.AssertExpectations(t)
	})

	t.Run("notifier failure never surfaces", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		prefRepo := new(MockPreferenceRepository)
		notifier := new(MockNotifier)

		userRepo.On("FindByID", ctx, userID).Return(user, nil)
		prefRepo.On("Insert", ctx, mock.Anything).Return(nil)

		var wg sync.WaitGroup
		wg.Add(1)
		notifier.On("NewLeadSubmitted", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { wg.Done() }).
			Return(errors.New("smtp down"))

		svc := NewPreferenceService(userRepo, prefRepo, notifier)
		pref, err := svc.Submit(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, pref)
		wg.Wait()
	})
}
