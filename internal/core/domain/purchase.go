package domain

import "time"

// PurchaseRecord is one line of a user's purchase history. Records are
// append-only: repeated purchases of the same product create separate
// entries, and nothing ever mutates or deletes them.
type PurchaseRecord struct {
	ProductID   string    `json:"productId"`
	Qty         int       `json:"qty"`
	PurchasedAt time.Time `json:"purchasedAt"`
}
