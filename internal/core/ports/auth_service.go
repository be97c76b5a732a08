package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// SignupInput carries the fields collected by the signup form.
type SignupInput struct {
	Email    string
	Password string
	Username string
}

// ProfileInput carries the editable profile fields. Email uniqueness is
// enforced at signup only, not on later edits.
type ProfileInput struct {
	Email    string
	Username string
	Password string
}

// AuthService implements account creation, credential login, and profile
// edits. Signup and Login also record the session.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*domain.User, error)
}

// SessionService tracks the current authenticated user.
type SessionService interface {
	// CurrentUser resolves the stored session id against the user
	// collection; domain.ErrUnauthenticated when unset or unresolved.
	CurrentUser(ctx context.Context) (*domain.User, error)
	// RequireAuth returns the current user id or domain.ErrUnauthenticated.
	RequireAuth(ctx context.Context) (string, error)
}
