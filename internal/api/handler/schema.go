package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth / profile ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// meResponse backs the profile form, which round-trips the stored
// password into its edit field.
type meResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	User userResponse `json:"user"`
}

// --- Products / listings ---

type listingRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"    validate:"required,oneof=Clothing Electronics Furniture Books Home Toys Other"`
	// Price zero is a valid free listing; only negatives are rejected.
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
}

type productResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

type productListResponse struct {
	Data  []productResponse `json:"data"`
	Total int               `json:"total"`
}

// --- Cart / checkout ---

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Qty defaults to 1 when omitted.
	Qty int `json:"qty" validate:"gte=0"`
}

type changeQtyRequest struct {
	// Delta is added to the current quantity; zero is rejected as a no-op
	// request.
	Delta int `json:"delta" validate:"required"`
}

type cartLineResponse struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"line_total"`
}

type cartResponse struct {
	Items []cartLineResponse `json:"items"`
	Total float64            `json:"total"`
}

type checkoutResponse struct {
	Lines       int       `json:"lines"`
	Total       float64   `json:"total"`
	PurchasedAt time.Time `json:"purchased_at"`
}

type purchaseResponse struct {
	ProductID   string    `json:"product_id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Qty         int       `json:"qty"`
	PurchasedAt time.Time `json:"purchased_at"`
}

type purchaseListResponse struct {
	Data []purchaseResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}
