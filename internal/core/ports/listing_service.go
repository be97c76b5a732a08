package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// ListingInput carries the fields of the add/edit listing form.
type ListingInput struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Image       string
}

// ListingService manages a user's own product listings. Mutations are
// restricted to the owner.
type ListingService interface {
	Create(ctx context.Context, ownerID string, input ListingInput) (*domain.Product, error)
	// Update fails with domain.ErrForbidden when userID does not own the
	// product, domain.ErrProductNotFound when id does not resolve.
	Update(ctx context.Context, userID, id string, input ListingInput) (*domain.Product, error)
	// Delete by a non-owner fails with domain.ErrForbidden; deleting a
	// missing id is a no-op.
	Delete(ctx context.Context, userID, id string) error
	// Mine lists the products owned by ownerID.
	Mine(ctx context.Context, ownerID string) ([]domain.Product, error)
}
