package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// CheckoutService converts cart contents into purchase history.
type CheckoutService struct {
	carts     ports.CartRepository
	purchases ports.PurchaseRepository
	products  ports.ProductRepository
	logger    zerolog.Logger
}

func NewCheckoutService(carts ports.CartRepository, purchases ports.PurchaseRepository, products ports.ProductRepository, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{carts: carts, purchases: purchases, products: products, logger: logger}
}

// Checkout stamps every cart line with one shared timestamp, appends the
// records to the purchase history, then replaces the cart with an empty
// sequence. An empty cart fails with domain.ErrEmptyCart and leaves the
// history untouched.
//
// The append and the clear are two separate store writes. A crash between
// them would leave the lines both purchased and still in the cart, so a
// later retry double-records them. Known limitation, kept as is: there is
// no retry path in this single-process setup.
func (s *CheckoutService) Checkout(ctx context.Context, userID string) (*ports.CheckoutResult, error) {
	lines, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now().UTC()
	records := make([]domain.PurchaseRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, domain.PurchaseRecord{
			ProductID:   line.ProductID,
			Qty:         line.Qty,
			PurchasedAt: now,
		})
	}

	if err := s.purchases.Append(ctx, userID, records); err != nil {
		return nil, fmt.Errorf("checkout: append history: %w", err)
	}
	if err := s.carts.Set(ctx, userID, []domain.CartLine{}); err != nil {
		return nil, fmt.Errorf("checkout: clear cart: %w", err)
	}

	total, err := s.total(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Int("lines", len(records)).Float64("total", total).Msg("checkout complete")
	return &ports.CheckoutResult{Lines: len(records), Total: total, PurchasedAt: now}, nil
}

// History returns the purchase records resolved against the product
// collection, oldest first. Products deleted since purchase render as
// "Unknown" at zero price.
func (s *CheckoutService) History(ctx context.Context, userID string) ([]ports.PurchaseView, error) {
	records, err := s.purchases.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	byID, err := s.productIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	views := make([]ports.PurchaseView, 0, len(records))
	for _, rec := range records {
		v := ports.PurchaseView{
			ProductID:   rec.ProductID,
			Title:       "Unknown",
			Qty:         rec.Qty,
			PurchasedAt: rec.PurchasedAt,
		}
		if p, ok := byID[rec.ProductID]; ok {
			v.Title = p.Title
			v.Price = p.Price
			v.Image = p.Image
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *CheckoutService) total(ctx context.Context, lines []domain.CartLine) (float64, error) {
	byID, err := s.productIndex(ctx)
	if err != nil {
		return 0, err
	}
	return CartTotal(lines, byID), nil
}

func (s *CheckoutService) productIndex(ctx context.Context) (map[string]domain.Product, error) {
	all, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	return byID, nil
}
