package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// CartRepository stores one ordered line sequence per user.
type CartRepository interface {
	// Get returns the user's cart lines; a user with no cart gets an empty slice.
	Get(ctx context.Context, userID string) ([]domain.CartLine, error)
	// Set replaces the user's cart with lines.
	Set(ctx context.Context, userID string, lines []domain.CartLine) error
}
