package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/notify"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PreferenceService handles handoff submissions: it resolves the submitting
// identity, persists the record, and best-effort notifies the reviewer.
type PreferenceService struct {
	userRepo domain.UserRepository
	prefRepo domain.PreferenceRepository
	notifier notify.Notifier
}

// NewPreferenceService creates a new preference service. notifier may be
// nil when no reviewer channel is configured.
func NewPreferenceService(
	userRepo domain.UserRepository,
	prefRepo domain.PreferenceRepository,
	notifier notify.Notifier,
) *PreferenceService {
	return &PreferenceService{
		userRepo: userRepo,
		prefRepo: prefRepo,
		notifier: notifier,
	}
}

// Submit creates exactly one handoff record per call. The submitting user
// must resolve to an existing identity or nothing is written. Notification
// dispatch is fire-and-forget: the record is already durable when it
// starts, and its failure is logged but never surfaced.
func (s *PreferenceService) Submit(ctx context.Context, input domain.PreferenceCreate) (*domain.Preference, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	pref := &domain.Preference{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Phone:       input.Phone,
		SubmittedAt: time.Now(),
	}

	if err := s.prefRepo.Insert(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to persist preference: %w", err)
	}

	if s.notifier != nil {
		go s.notifyReviewer(*user, *pref)
	}

	return pref, nil
}

func (s *PreferenceService) notifyReviewer(user domain.User, pref domain.Preference) {
	if err := s.notifier.NewLeadSubmitted(user, pref); err != nil {
		log.Warn().
			Err(err).
			Str("preference_id", pref.ID.Hex()).
			Msg("Reviewer notification failed")
	}
}
