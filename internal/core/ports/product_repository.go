package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// ProductRepository defines persistence operations for product listings.
type ProductRepository interface {
	All(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)
	// Save upserts by id: update in place when the id exists, append otherwise.
	Save(ctx context.Context, p *domain.Product) error
	// Delete removes by id. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
