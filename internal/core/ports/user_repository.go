package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Users are never deleted.
type UserRepository interface {
	All(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save upserts by id: update in place when the id exists, append otherwise.
	Save(ctx context.Context, u *domain.User) error
}
