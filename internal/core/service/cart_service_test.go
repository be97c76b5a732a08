package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

func cartFixture() *stubProductRepo {
	return &stubProductRepo{products: []domain.Product{
		{ID: "p1", OwnerID: "seller", Title: "Jacket", Category: domain.CategoryClothing, Price: 25},
		{ID: "p2", OwnerID: "seller", Title: "Laptop", Category: domain.CategoryElectronics, Price: 220},
	}}
}

func TestAddToCart_SameProductTwiceMergesLine(t *testing.T) {
	carts := newStubCartRepo()
	svc := NewCartService(carts, cartFixture(), discardLogger)

	ctx := context.Background()
	if err := svc.AddToCart(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddToCart(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("second add: %v", err)
	}

	lines := carts.carts["u1"]
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("expected qty 2, got %d", lines[0].Qty)
	}
}

func TestAddToCart_DistinctProductsAppend(t *testing.T) {
	carts := newStubCartRepo()
	svc := NewCartService(carts, cartFixture(), discardLogger)

	ctx := context.Background()
	if err := svc.AddToCart(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	if err := svc.AddToCart(ctx, "u1", "p2", 1); err != nil {
		t.Fatalf("add p2: %v", err)
	}

	lines := carts.carts["u1"]
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != "p1" || lines[1].ProductID != "p2" {
		t.Errorf("expected lines in insertion order, got %+v", lines)
	}
}

func TestAddToCart_RejectsNonPositiveQty(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), cartFixture(), discardLogger)

	err := svc.AddToCart(context.Background(), "u1", "p1", 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestChangeQty_DropToZeroRemovesLine(t *testing.T) {
	carts := newStubCartRepo()
	carts.carts["u1"] = []domain.CartLine{{ProductID: "p1", Qty: 1}}
	svc := NewCartService(carts, cartFixture(), discardLogger)

	if err := svc.ChangeQty(context.Background(), "u1", "p1", -1); err != nil {
		t.Fatalf("ChangeQty returned error: %v", err)
	}
	if len(carts.carts["u1"]) != 0 {
		t.Errorf("expected empty cart, got %+v", carts.carts["u1"])
	}
}

func TestChangeQty_Increment(t *testing.T) {
	carts := newStubCartRepo()
	carts.carts["u1"] = []domain.CartLine{{ProductID: "p1", Qty: 1}}
	svc := NewCartService(carts, cartFixture(), discardLogger)

	if err := svc.ChangeQty(context.Background(), "u1", "p1", 2); err != nil {
		t.Fatalf("ChangeQty returned error: %v", err)
	}
	if got := carts.carts["u1"][0].Qty; got != 3 {
		t.Errorf("expected qty 3, got %d", got)
	}
}

func TestChangeQty_UnknownProductNoOp(t *testing.T) {
	carts := newStubCartRepo()
	carts.carts["u1"] = []domain.CartLine{{ProductID: "p1", Qty: 1}}
	svc := NewCartService(carts, cartFixture(), discardLogger)

	if err := svc.ChangeQty(context.Background(), "u1", "nope", 5); err != nil {
		t.Fatalf("ChangeQty returned error: %v", err)
	}
	if len(carts.carts["u1"]) != 1 || carts.carts["u1"][0].Qty != 1 {
		t.Errorf("expected cart unchanged, got %+v", carts.carts["u1"])
	}
}

func TestRemoveItem(t *testing.T) {
	carts := newStubCartRepo()
	carts.carts["u1"] = []domain.CartLine{
		{ProductID: "p1", Qty: 3},
		{ProductID: "p2", Qty: 1},
	}
	svc := NewCartService(carts, cartFixture(), discardLogger)

	if err := svc.RemoveItem(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}
	lines := carts.carts["u1"]
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Errorf("expected only p2 left, got %+v", lines)
	}
}

func TestView_ResolvesLinesAndTotal(t *testing.T) {
	carts := newStubCartRepo()
	carts.carts["u1"] = []domain.CartLine{
		{ProductID: "p1", Qty: 2},
		{ProductID: "p2", Qty: 1},
	}
	svc := NewCartService(carts, cartFixture(), discardLogger)

	view, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Lines))
	}
	if view.Lines[0].Title != "Jacket" || view.Lines[0].LineTotal != 50 {
		t.Errorf("unexpected first line: %+v", view.Lines[0])
	}
	if view.Total != 270 {
		t.Errorf("expected total 270, got %v", view.Total)
	}
}

func TestView_DanglingProductRendersUnknown(t *testing.T) {
	carts := newStubCartRepo()
	carts.carts["u1"] = []domain.CartLine{
		{ProductID: "gone", Qty: 2},
		{ProductID: "p1", Qty: 1},
	}
	svc := NewCartService(carts, cartFixture(), discardLogger)

	view, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if view.Lines[0].Title != "Unknown" || view.Lines[0].Price != 0 {
		t.Errorf("expected Unknown at zero price, got %+v", view.Lines[0])
	}
	// Only the resolvable line counts toward the total.
	if view.Total != 25 {
		t.Errorf("expected total 25, got %v", view.Total)
	}
}

func TestView_EmptyCart(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), cartFixture(), discardLogger)

	view, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Lines) != 0 || view.Total != 0 {
		t.Errorf("expected empty view, got %+v", view)
	}
}

func TestCartTotal(t *testing.T) {
	products := map[string]domain.Product{
		"p1": {ID: "p1", Price: 10},
		"p2": {ID: "p2", Price: 2.5},
	}
	lines := []domain.CartLine{
		{ProductID: "p1", Qty: 3},
		{ProductID: "p2", Qty: 2},
		{ProductID: "gone", Qty: 5},
	}
	if got := CartTotal(lines, products); got != 35 {
		t.Errorf("expected 35, got %v", got)
	}
}
