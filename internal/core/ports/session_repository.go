package ports

import "context"

// SessionRepository persists the single current-user id. There is exactly
// one session per store: no tokens, no expiry.
type SessionRepository interface {
	// Current returns the stored user id, or "" when nobody is logged in.
	Current(ctx context.Context) (string, error)
	SetCurrent(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}
