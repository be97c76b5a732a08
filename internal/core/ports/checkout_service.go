package ports

import (
	"context"
	"time"
)

// CheckoutResult summarizes a completed checkout.
type CheckoutResult struct {
	Lines       int
	Total       float64
	PurchasedAt time.Time
}

// PurchaseView is a purchase record resolved against the product
// collection; dangling references render as "Unknown" at zero price.
type PurchaseView struct {
	ProductID   string
	Title       string
	Price       float64
	Image       string
	Qty         int
	PurchasedAt time.Time
}

// CheckoutService moves cart contents into purchase history.
type CheckoutService interface {
	// Checkout stamps every current cart line with a single timestamp,
	// appends them to the purchase history, then empties the cart.
	// An empty cart fails with domain.ErrEmptyCart and changes nothing.
	Checkout(ctx context.Context, userID string) (*CheckoutResult, error)
	History(ctx context.Context, userID string) ([]PurchaseView, error)
}
