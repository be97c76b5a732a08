package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// SessionService resolves the persisted current-user id. There are no
// tokens and no expiry: the session lives until logout.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// RequireAuth returns the current user id, or domain.ErrUnauthenticated
// when no session is recorded.
func (s *SessionService) RequireAuth(ctx context.Context) (string, error) {
	id, err := s.sessions.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("session: %w", err)
	}
	if id == "" {
		return "", domain.ErrUnauthenticated
	}
	return id, nil
}

// CurrentUser resolves the session id against the user collection. A
// stored id that no longer resolves counts as unauthenticated, not as an
// internal error.
func (s *SessionService) CurrentUser(ctx context.Context) (*domain.User, error) {
	id, err := s.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("session: %w", err)
	}
	return user, nil
}
