package domain

import (
	"errors"
	"time"
)

// Category classifies a product listing.
type Category string

const (
	CategoryClothing    Category = "Clothing"
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryBooks       Category = "Books"
	CategoryHome        Category = "Home"
	CategoryToys        Category = "Toys"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryClothing,
	CategoryElectronics,
	CategoryFurniture,
	CategoryBooks,
	CategoryHome,
	CategoryToys,
	CategoryOther,
}

var ErrProductNotFound = errors.New("product not found")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a listing offered for sale by its owner. Only the owner may
// mutate or delete it; everyone may browse it.
type Product struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
