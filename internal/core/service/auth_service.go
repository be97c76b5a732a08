package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
	"github.com/ecofinds/marketplace/internal/pkg/identity"
)

// AuthService implements signup, login, logout, and profile edits.
// Credentials are compared as plain strings; see domain.User.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Signup creates a new account and logs the session in. A duplicate email
// (case-insensitive) aborts with domain.ErrEmailExists and no state change.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	if email == "" || input.Password == "" || username == "" {
		return nil, fmt.Errorf("%w: email, password and username are required", domain.ErrValidation)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user := &domain.User{
		ID:       identity.New(),
		Email:    email,
		Password: input.Password,
		Username: username,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if err := s.sessions.SetCurrent(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("signup: record session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user signed up")
	return user, nil
}

// Login resolves the email case-insensitively and compares the password.
// Any mismatch surfaces as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.sessions.SetCurrent(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("login: record session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}

// Logout clears the stored session id.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// UpdateProfile edits the user in place. Email uniqueness is not
// re-enforced here: it is a signup-time check only.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ports.ProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" || input.Password == "" || username == "" {
		return nil, fmt.Errorf("%w: email, password and username are required", domain.ErrValidation)
	}

	user.Email = email
	user.Username = username
	user.Password = input.Password
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("profile updated")
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
