package handler

import (
	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// --- Request → Service input ---

func toListingInput(req listingRequest) ports.ListingInput {
	return ports.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
	}
}

// --- Domain / service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Category:    string(p.Category),
		Price:       p.Price,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func toProductListResponse(products []domain.Product) productListResponse {
	resp := productListResponse{
		Data:  make([]productResponse, 0, len(products)),
		Total: len(products),
	}
	for i := range products {
		resp.Data = append(resp.Data, toProductResponse(&products[i]))
	}
	return resp
}

func toCartResponse(view *ports.CartView) cartResponse {
	resp := cartResponse{
		Items: make([]cartLineResponse, 0, len(view.Lines)),
		Total: view.Total,
	}
	for _, line := range view.Lines {
		resp.Items = append(resp.Items, cartLineResponse{
			ProductID: line.ProductID,
			Title:     line.Title,
			Category:  line.Category,
			Price:     line.Price,
			Image:     line.Image,
			Qty:       line.Qty,
			LineTotal: line.LineTotal,
		})
	}
	return resp
}

func toPurchaseListResponse(views []ports.PurchaseView) purchaseListResponse {
	resp := purchaseListResponse{Data: make([]purchaseResponse, 0, len(views))}
	for _, v := range views {
		resp.Data = append(resp.Data, purchaseResponse{
			ProductID:   v.ProductID,
			Title:       v.Title,
			Price:       v.Price,
			Image:       v.Image,
			Qty:         v.Qty,
			PurchasedAt: v.PurchasedAt.UTC(),
		})
	}
	return resp
}
