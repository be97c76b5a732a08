package ports

import (
	"context"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// PurchaseRepository stores the append-only purchase history per user.
type PurchaseRepository interface {
	// Get returns the user's history in purchase order; no history is an
	// empty slice.
	Get(ctx context.Context, userID string) ([]domain.PurchaseRecord, error)
	// Append adds records to the end of the user's history.
	Append(ctx context.Context, userID string, records []domain.PurchaseRecord) error
}
