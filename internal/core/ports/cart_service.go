package ports

import (
	"context"
)

// CartLineView is a cart line resolved against the product collection.
// A dangling product reference keeps the line but renders as "Unknown"
// at zero price.
type CartLineView struct {
	ProductID string
	Title     string
	Category  string
	Price     float64
	Image     string
	Qty       int
	LineTotal float64
}

// CartView is the fully resolved cart: lines plus the total over lines
// whose product still resolves.
type CartView struct {
	Lines []CartLineView
	Total float64
}

// CartService mutates and resolves per-user carts.
type CartService interface {
	// AddToCart increments an existing line for productID or appends a new
	// one. qty must be positive.
	AddToCart(ctx context.Context, userID, productID string, qty int) error
	// ChangeQty adjusts an existing line by delta; a resulting qty of zero
	// or below removes the line. Unknown productID is a no-op.
	ChangeQty(ctx context.Context, userID, productID string, delta int) error
	// RemoveItem removes the line unconditionally.
	RemoveItem(ctx context.Context, userID, productID string) error
	View(ctx context.Context, userID string) (*CartView, error)
}
