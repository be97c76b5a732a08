package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
	"github.com/ecofinds/marketplace/internal/pkg/identity"
)

// CatalogService seeds demo data on first run and serves the shared
// product feed.
type CatalogService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCatalogService(users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{users: users, products: products, logger: logger}
}

type seedProduct struct {
	title       string
	price       float64
	category    domain.Category
	image       string
	description string
}

var seedProducts = []seedProduct{
	{"Vintage Denim Jacket", 25, domain.CategoryClothing, "https://via.placeholder.com/600x450?text=EcoFinds+Jacket", "Well-loved denim jacket, size M."},
	{"Used Laptop 8GB/256GB", 220, domain.CategoryElectronics, "https://via.placeholder.com/600x450?text=EcoFinds+Laptop", "Works great, minor scratches."},
	{"Wooden Coffee Table", 60, domain.CategoryFurniture, "https://via.placeholder.com/600x450?text=EcoFinds+Table", "Solid wood, 90x45 cm."},
}

// EnsureSeeded creates the demo user and demo products when the product
// collection is empty. Calling it again is a no-op, so restarts never
// duplicate the seed data.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	existing, err := s.products.All(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	demo := &domain.User{
		ID:       identity.New(),
		Email:    "demo@ecofinds.app",
		Password: "demo123",
		Username: "DemoUser",
	}
	if err := s.users.Save(ctx, demo); err != nil {
		return fmt.Errorf("seed: save demo user: %w", err)
	}

	now := time.Now().UTC()
	for _, sp := range seedProducts {
		p := &domain.Product{
			ID:          identity.New(),
			OwnerID:     demo.ID,
			Title:       sp.title,
			Description: sp.description,
			Category:    sp.category,
			Price:       sp.price,
			Image:       sp.image,
			CreatedAt:   now,
		}
		if err := s.products.Save(ctx, p); err != nil {
			return fmt.Errorf("seed: save product %q: %w", sp.title, err)
		}
	}

	s.logger.Info().Int("products", len(seedProducts)).Str("owner", demo.ID).Msg("seeded demo catalog")
	return nil
}

// Search filters the full catalog by category equality and case-insensitive
// substring match on the title, newest first. The sort is stable, so
// products created at the same instant keep insertion order.
func (s *CatalogService) Search(ctx context.Context, query string, category string) ([]domain.Product, error) {
	all, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if category != "" && string(p.Category) != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// GetProduct returns a single product or domain.ErrProductNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}
