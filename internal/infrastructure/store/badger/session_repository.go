package badger

import "context"

// SessionRepository persists the current-user id under keyCurrentUser.
// The value is a bare JSON string; clearing the session deletes the key.
type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Current(ctx context.Context) (string, error) {
	var id string
	if err := r.store.Get(ctx, keyCurrentUser, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *SessionRepository) SetCurrent(ctx context.Context, userID string) error {
	return r.store.Set(ctx, keyCurrentUser, userID)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, keyCurrentUser)
}
