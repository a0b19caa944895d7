package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/security"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles reviewer accounts and the review directory.
type AdminService struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
	prefRepo  domain.PreferenceRepository
	jwt       *security.JWTManager
	adminKey  string
}

// NewAdminService creates a new admin service
func NewAdminService(
	adminRepo domain.AdminRepository,
	userRepo domain.UserRepository,
	prefRepo domain.PreferenceRepository,
	jwt *security.JWTManager,
	adminKey string,
) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		prefRepo:  prefRepo,
		jwt:       jwt,
		adminKey:  adminKey,
	}
}

func (s *AdminService) checkAdminKey(key string) error {
	if s.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
		return ErrInvalidAdminKey
	}
	return nil
}

// Register creates a reviewer account. One-time setup gated by the shared
// admin key.
func (s *AdminService) Register(ctx context.Context, creds domain.AdminCredentials) (*domain.Admin, error) {
	if err := s.checkAdminKey(creds.AdminKey); err != nil {
		return nil, err
	}

	existing, err := s.adminRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin: %w", err)
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Admin{
		Email:        creds.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// Login authenticates a reviewer and returns a role-carrying token.
func (s *AdminService) Login(ctx context.Context, creds domain.AdminCredentials) (string, error) {
	if err := s.checkAdminKey(creds.AdminKey); err != nil {
		return "", err
	}

	admin, err := s.adminRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		return "", fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return "", ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(creds.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAdminToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// ListUsersWithStatus returns every known user with submission status: has
// at least one handoff record and, if so, the id of one such record. A
// failed lookup for a single user is skipped, never fatal.
func (s *AdminService) ListUsersWithStatus(ctx context.Context) ([]domain.UserWithStatus, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]domain.UserWithStatus, 0, len(users))
	for _, u := range users {
		row := domain.UserWithStatus{User: u}

		pref, err := s.prefRepo.FindOneByUserID(ctx, u.ID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", u.ID.Hex()).Msg("Preference lookup failed, listing user without status")
		} else if pref != nil {
			row.HasSubmittedPreference = true
			row.PreferenceID = &pref.ID
		}

		out = append(out, row)
	}

	return out, nil
}

// GetPreference fetches one handoff record and denormalizes the submitter
// for reviewer convenience. An unresolvable submitter leaves the field
// empty rather than failing the read.
func (s *AdminService) GetPreference(ctx context.Context, id string) (*domain.Preference, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPreferenceNotFound
	}

	pref, err := s.prefRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preference: %w", err)
	}
	if pref == nil {
		return nil, ErrPreferenceNotFound
	}

	user, err := s.userRepo.FindByID(ctx, pref.UserID)
	if err != nil {
		log.Warn().Err(err).Str("preference_id", id).Msg("Submitter lookup failed")
	} else if user != nil {
		pref.Submitter = user
	}

	return pref, nil
}
