package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// CartService mutates per-user carts. All mutations are full read-modify-
// write cycles over the user's line sequence; later writers win.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// AddToCart increments an existing line for productID, or appends a new
// one. The cart keeps at most one line per distinct product.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	lines, err := s.carts.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{ProductID: productID, Qty: qty})
	}

	if err := s.carts.Set(ctx, userID, lines); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	s.logger.Debug().Str("user_id", userID).Str("product_id", productID).Int("qty", qty).Msg("cart line added")
	return nil
}

// ChangeQty adjusts the line for productID by delta. A line whose quantity
// drops to zero or below is removed entirely. No line, no change.
func (s *CartService) ChangeQty(ctx context.Context, userID, productID string, delta int) error {
	lines, err := s.carts.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("change qty: %w", err)
	}

	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		lines[i].Qty += delta
		if lines[i].Qty <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		}
		if err := s.carts.Set(ctx, userID, lines); err != nil {
			return fmt.Errorf("change qty: %w", err)
		}
		return nil
	}
	return nil
}

// RemoveItem drops the line for productID regardless of quantity.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	lines, err := s.carts.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	if err := s.carts.Set(ctx, userID, kept); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

// View resolves the cart against the product collection. Lines whose
// product no longer exists stay visible as "Unknown" at zero price and
// contribute nothing to the total.
func (s *CartService) View(ctx context.Context, userID string) (*ports.CartView, error) {
	lines, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("view cart: %w", err)
	}
	byID, err := s.productIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("view cart: %w", err)
	}

	view := &ports.CartView{Lines: make([]ports.CartLineView, 0, len(lines))}
	for _, line := range lines {
		view.Lines = append(view.Lines, resolveLine(line, byID))
	}
	view.Total = CartTotal(lines, byID)
	return view, nil
}

func (s *CartService) productIndex(ctx context.Context) (map[string]domain.Product, error) {
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

func resolveLine(line domain.CartLine, byID map[string]domain.Product) ports.CartLineView {
	v := ports.CartLineView{
		ProductID: line.ProductID,
		Title:     "Unknown",
		Qty:       line.Qty,
	}
	if p, ok := byID[line.ProductID]; ok {
		v.Title = p.Title
		v.Category = string(p.Category)
		v.Price = p.Price
		v.Image = p.Image
		v.LineTotal = p.Price * float64(line.Qty)
	}
	return v
}

// CartTotal sums price times quantity over the lines whose product still
// resolves; dangling references contribute zero.
func CartTotal(lines []domain.CartLine, products map[string]domain.Product) float64 {
	var total float64
	for _, line := range lines {
		if p, ok := products[line.ProductID]; ok {
			total += p.Price * float64(line.Qty)
		}
	}
	return total
}
