package badger

import (
	"context"
	"strings"

	"github.com/ecofinds/marketplace/internal/core/domain"
)

// UserRepository persists the user collection as one JSON array under
// keyUsers.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) All(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Get(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByEmail matches case-insensitively; stored emails are normalized at
// signup but older edits may have mixed case.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Save upserts by id: the whole collection is re-read, patched in memory,
// and written back.
func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	return r.store.Mutate(ctx, func() error {
		var users []domain.User
		if err := r.store.Get(ctx, keyUsers, &users); err != nil {
			return err
		}

		updated := false
		for i := range users {
			if users[i].ID == u.ID {
				users[i] = *u
				updated = true
				break
			}
		}
		if !updated {
			users = append(users, *u)
		}
		return r.store.Set(ctx, keyUsers, users)
	})
}
