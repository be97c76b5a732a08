package badger

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// ProductRepository persists the product collection as one JSON array
// under keyProducts.
type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) All(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.store.Get(ctx, keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	products, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.OwnerID == ownerID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// Save upserts by id.
func (r *ProductRepository) Save(ctx context.Context, p *domain.Product) error {
	return r.store.Mutate(ctx, func() error {
		var products []domain.Product
		if err := r.store.Get(ctx, keyProducts, &products); err != nil {
			return err
		}

		updated := false
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = *p
				updated = true
				break
			}
		}
		if !updated {
			products = append(products, *p)
		}
		return r.store.Set(ctx, keyProducts, products)
	})
}

// Delete removes by id; an id that is not present leaves the collection
// unchanged.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.Mutate(ctx, func() error {
		var products []domain.Product
		if err := r.store.Get(ctx, keyProducts, &products); err != nil {
			return err
		}

		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return r.store.Set(ctx, keyProducts, kept)
	})
}
