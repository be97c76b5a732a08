package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// CatalogService provides the shared browsing surface: demo-data seeding
// and product search.
type CatalogService interface {
	// EnsureSeeded creates a demo user and a small fixed set of demo
	// products when the product collection is empty. Idempotent.
	EnsureSeeded(ctx context.Context) error
	// Search filters by category (empty = all) and case-insensitive
	// substring match on title (empty = all), newest first. Products with
	// equal creation times keep insertion order.
	Search(ctx context.Context, query string, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}
