package badger

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// CartRepository persists all carts as one JSON object under keyCarts,
// mapping user id to that user's line sequence.
type CartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Get(ctx context.Context, userID string) ([]domain.CartLine, error) {
	carts := map[string][]domain.CartLine{}
	if err := r.store.Get(ctx, keyCarts, &carts); err != nil {
		return nil, err
	}
	lines := carts[userID]
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

// Set replaces the user's cart inside the shared carts document.
func (r *CartRepository) Set(ctx context.Context, userID string, lines []domain.CartLine) error {
	return r.store.Mutate(ctx, func() error {
		carts := map[string][]domain.CartLine{}
		if err := r.store.Get(ctx, keyCarts, &carts); err != nil {
			return err
		}
		if lines == nil {
			lines = []domain.CartLine{}
		}
		carts[userID] = lines
		return r.store.Set(ctx, keyCarts, carts)
	})
}
