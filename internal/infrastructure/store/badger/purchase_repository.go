package badger

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// PurchaseRepository persists all purchase histories as one JSON object
// under keyPurchases, mapping user id to an append-only record sequence.
type PurchaseRepository struct {
	store *Store
}

func NewPurchaseRepository(store *Store) *PurchaseRepository {
	return &PurchaseRepository{store: store}
}

func (r *PurchaseRepository) Get(ctx context.Context, userID string) ([]domain.PurchaseRecord, error) {
	purchases := map[string][]domain.PurchaseRecord{}
	if err := r.store.Get(ctx, keyPurchases, &purchases); err != nil {
		return nil, err
	}
	records := purchases[userID]
	if records == nil {
		records = []domain.PurchaseRecord{}
	}
	return records, nil
}

// Append adds records to the end of the user's history. Existing records
// are never touched.
func (r *PurchaseRepository) Append(ctx context.Context, userID string, records []domain.PurchaseRecord) error {
	return r.store.Mutate(ctx, func() error {
		purchases := map[string][]domain.PurchaseRecord{}
		if err := r.store.Get(ctx, keyPurchases, &purchases); err != nil {
			return err
		}
		purchases[userID] = append(purchases[userID], records...)
		return r.store.Set(ctx, keyPurchases, purchases)
	})
}
