package domain

import "errors"

var ErrEmptyCart = errors.New("cart is empty")

// CartLine is a single line item in a user's cart: one line per distinct
// product, quantity always positive. A line whose quantity drops to zero is
// removed rather than kept at zero.
//
// ProductID may dangle (the listing was deleted after the line was added);
// dangling lines are tolerated and priced at zero.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}
