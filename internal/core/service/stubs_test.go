package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   []domain.User
	saveErr error // if set, Save returns this error
}

func (r *stubUserRepo) All(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	r.users = append(r.users, *u)
	return nil
}

type stubProductRepo struct {
	products []domain.Product
	saveErr  error
}

func (r *stubProductRepo) All(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Product, error) {
	var mine []domain.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	r.products = append(r.products, *p)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}

type stubCartRepo struct {
	carts  map[string][]domain.CartLine
	setErr error
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string][]domain.CartLine)}
}

func (r *stubCartRepo) Get(_ context.Context, userID string) ([]domain.CartLine, error) {
	return append([]domain.CartLine(nil), r.carts[userID]...), nil
}

func (r *stubCartRepo) Set(_ context.Context, userID string, lines []domain.CartLine) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.carts[userID] = append([]domain.CartLine(nil), lines...)
	return nil
}

type stubPurchaseRepo struct {
	purchases map[string][]domain.PurchaseRecord
	appendErr error
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[string][]domain.PurchaseRecord)}
}

func (r *stubPurchaseRepo) Get(_ context.Context, userID string) ([]domain.PurchaseRecord, error) {
	return append([]domain.PurchaseRecord(nil), r.purchases[userID]...), nil
}

func (r *stubPurchaseRepo) Append(_ context.Context, userID string, records []domain.PurchaseRecord) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.purchases[userID] = append(r.purchases[userID], records...)
	return nil
}

type stubSessionRepo struct {
	current string
}

func (r *stubSessionRepo) Current(_ context.Context) (string, error) {
	return r.current, nil
}

func (r *stubSessionRepo) SetCurrent(_ context.Context, userID string) error {
	r.current = userID
	return nil
}

func (r *stubSessionRepo) Clear(_ context.Context) error {
	r.current = ""
	return nil
}
