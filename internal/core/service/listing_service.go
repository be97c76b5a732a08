package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
	"github.com/ecofinds/marketplace/internal/pkg/identity"
)

// defaultImage is used when a listing is created or edited without one.
const defaultImage = "https://via.placeholder.com/600x450?text=EcoFinds+Item"

// ListingService manages product listings on behalf of their owners.
type ListingService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewListingService(products ports.ProductRepository, logger zerolog.Logger) *ListingService {
	return &ListingService{products: products, logger: logger}
}

func validateListing(input *ports.ListingInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Image = strings.TrimSpace(input.Image)

	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !domain.Category(input.Category).IsValid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Image == "" {
		input.Image = defaultImage
	}
	return nil
}

// Create adds a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID string, input ports.ListingInput) (*domain.Product, error) {
	if err := validateListing(&input); err != nil {
		return nil, err
	}

	p := &domain.Product{
		ID:          identity.New(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    domain.Category(input.Category),
		Price:       input.Price,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.Info().Str("product_id", p.ID).Str("owner_id", ownerID).Str("category", string(p.Category)).Msg("listing created")
	return p, nil
}

// Update edits an existing listing. Only the owner may edit; the creation
// timestamp is preserved.
func (s *ListingService) Update(ctx context.Context, userID, id string, input ports.ListingInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	if err := validateListing(&input); err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.Category = domain.Category(input.Category)
	p.Price = input.Price
	p.Image = input.Image
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	s.logger.Info().Str("product_id", p.ID).Msg("listing updated")
	return p, nil
}

// Delete removes a listing. Deleting an id that no longer exists is a
// no-op; deleting someone else's listing is forbidden.
func (s *ListingService) Delete(ctx context.Context, userID, id string) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil
		}
		return err
	}
	if p.OwnerID != userID {
		return domain.ErrForbidden
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("listing deleted")
	return nil
}

// Mine lists the products owned by ownerID, in insertion order.
func (s *ListingService) Mine(ctx context.Context, ownerID string) ([]domain.Product, error) {
	return s.products.FindByOwner(ctx, ownerID)
}
