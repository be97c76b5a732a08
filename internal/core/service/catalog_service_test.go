package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

func TestEnsureSeeded_PopulatesEmptyCatalog(t *testing.T) {
	users := &stubUserRepo{}
	products := &stubProductRepo{}
	svc := NewCatalogService(users, products, discardLogger)

	if err := svc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}

	if len(users.users) != 1 {
		t.Fatalf("expected 1 demo user, got %d", len(users.users))
	}
	demo := users.users[0]
	if demo.Email != "demo@ecofinds.app" {
		t.Errorf("unexpected demo email %q", demo.Email)
	}
	if len(products.products) != len(seedProducts) {
		t.Fatalf("expected %d seeded products, got %d", len(seedProducts), len(products.products))
	}
	for _, p := range products.products {
		if p.OwnerID != demo.ID {
			t.Errorf("product %q owned by %q, want demo user %q", p.Title, p.OwnerID, demo.ID)
		}
	}
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	users := &stubUserRepo{}
	products := &stubProductRepo{}
	svc := NewCatalogService(users, products, discardLogger)

	ctx := context.Background()
	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("first EnsureSeeded: %v", err)
	}
	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("second EnsureSeeded: %v", err)
	}

	if len(products.products) != len(seedProducts) {
		t.Errorf("expected %d products after reseed, got %d", len(seedProducts), len(products.products))
	}
	if len(users.users) != 1 {
		t.Errorf("expected 1 user after reseed, got %d", len(users.users))
	}
}

func TestEnsureSeeded_SkipsNonEmptyCatalog(t *testing.T) {
	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Title: "Existing", Category: domain.CategoryOther},
	}}
	users := &stubUserRepo{}
	svc := NewCatalogService(users, products, discardLogger)

	if err := svc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	if len(products.products) != 1 {
		t.Errorf("expected catalog untouched, got %d products", len(products.products))
	}
	if len(users.users) != 0 {
		t.Errorf("expected no demo user, got %d users", len(users.users))
	}
}

func catalogFixture() *stubProductRepo {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &stubProductRepo{products: []domain.Product{
		{ID: "p1", Title: "Vintage Denim Jacket", Category: domain.CategoryClothing, Price: 25, CreatedAt: base},
		{ID: "p2", Title: "Used Laptop", Category: domain.CategoryElectronics, Price: 220, CreatedAt: base.Add(time.Hour)},
		{ID: "p3", Title: "Laptop Stand", Category: domain.CategoryElectronics, Price: 15, CreatedAt: base.Add(2 * time.Hour)},
	}}
}

func TestSearch_NoFiltersReturnsAllNewestFirst(t *testing.T) {
	svc := NewCatalogService(&stubUserRepo{}, catalogFixture(), discardLogger)

	got, err := svc.Search(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	wantOrder := []string{"p3", "p2", "p1"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestSearch_TitleSubstringCaseInsensitive(t *testing.T) {
	svc := NewCatalogService(&stubUserRepo{}, catalogFixture(), discardLogger)

	got, err := svc.Search(context.Background(), "LAPTOP", "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "p3" || got[1].ID != "p2" {
		t.Errorf("expected [p3 p2], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestSearch_CategoryFilter(t *testing.T) {
	svc := NewCatalogService(&stubUserRepo{}, catalogFixture(), discardLogger)

	got, err := svc.Search(context.Background(), "", "Clothing")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("expected only p1, got %+v", got)
	}
}

func TestSearch_CombinedFilters(t *testing.T) {
	svc := NewCatalogService(&stubUserRepo{}, catalogFixture(), discardLogger)

	got, err := svc.Search(context.Background(), "stand", "Electronics")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p3" {
		t.Errorf("expected only p3, got %+v", got)
	}
}

func TestSearch_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	products := &stubProductRepo{products: []domain.Product{
		{ID: "a", Title: "First", Category: domain.CategoryOther, CreatedAt: at},
		{ID: "b", Title: "Second", Category: domain.CategoryOther, CreatedAt: at},
	}}
	svc := NewCatalogService(&stubUserRepo{}, products, discardLogger)

	got, err := svc.Search(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("expected stable order [a b], got [%s %s]", got[0].ID, got[1].ID)
	}
}
