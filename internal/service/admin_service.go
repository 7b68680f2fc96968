package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ErrEmailTaken is returned when creating an admin with an email that
// already exists.
var ErrEmailTaken = errors.New("admin email already exists")

// AdminService handles admin account lookup and creation.
type AdminService struct {
	adminStore AdminStore
	auth       *AuthService
	log        zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminStore AdminStore, auth *AuthService, log zerolog.Logger) *AdminService {
	return &AdminService{
		adminStore: adminStore,
		auth:       auth,
		log:        log.With().Str("component", "admin_service").Logger(),
	}
}

// Bootstrap creates the configured admin account if it does not exist yet.
// Idempotent across restarts; an empty email disables the bootstrap. A
// concurrent startup losing the unique-email race also counts as success.
func (s *AdminService) Bootstrap(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}

	existing, err := s.adminStore.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup bootstrap admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	_, err = s.Create(ctx, email, password)
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("Bootstrap admin created")
	return nil
}

// GetByEmail retrieves an admin by email. Returns (nil, nil) when absent.
func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return s.adminStore.GetByEmail(ctx, email)
}

// GetByID retrieves an admin by ID. Returns (nil, nil) when absent.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminStore.GetByID(ctx, id)
}

// Create persists a new admin with a hashed password. Returns
// ErrEmailTaken when the email is already in use.
func (s *AdminService) Create(ctx context.Context, email, password string) (*model.Admin, error) {
	admin := &model.Admin{
		Email:        email,
		PasswordHash: s.auth.HashPassword(password),
	}
	if err := s.adminStore.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}
