package badger

import (
	"context"
	"testing"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

var discardLogger = zerolog.Nop()

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(Config{InMemory: true}, discardLogger)
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, discardLogger)
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := st.Set(ctx, "k", doc{Name: "x", Count: 3}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	var got doc
	if err := st.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "x" || got.Count != 3 {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestStore_MissingKeyLeavesDefault(t *testing.T) {
	st := newTestStore(t)

	got := []string{"sentinel"}
	if err := st.Get(context.Background(), "absent", &got); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != 1 || got[0] != "sentinel" {
		t.Errorf("expected dest untouched for missing key, got %+v", got)
	}
}

func TestStore_CorruptValueRecoversWithDefault(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte("k"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("write raw value: %v", err)
	}

	var got map[string]string
	if err := st.Get(ctx, "k", &got); err != nil {
		t.Fatalf("expected recovery, got error: %v", err)
	}
	if got != nil {
		t.Errorf("expected zero value after corrupt read, got %+v", got)
	}
}

func TestStore_TypeMismatchRecoversWithDefault(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	type account struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	// Syntactically valid JSON whose second element has the wrong shape.
	// Unmarshal populates the slice before reporting the mismatch, so the
	// decode must not leak a half-decoded document into dest.
	err := st.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte("k"), []byte(`[{"id":"u1","email":"a@b.c"},{"id":42}]`))
	})
	if err != nil {
		t.Fatalf("write raw value: %v", err)
	}

	var got []account
	if err := st.Get(ctx, "k", &got); err != nil {
		t.Fatalf("expected recovery, got error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty default after shape mismatch, got %+v", got)
	}
}

func TestStore_Delete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var got string
	if err := st.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty value after delete, got %q", got)
	}

	// Deleting again must still succeed.
	if err := st.Delete(ctx, "k"); err != nil {
		t.Errorf("second Delete returned error: %v", err)
	}
}

func TestStore_Ping(t *testing.T) {
	st := newTestStore(t)

	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("Ping returned error: %v", err)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	st := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := st.Set(ctx, "k", "v"); err == nil {
		t.Error("expected error for cancelled context on Set")
	}
	var got string
	if err := st.Get(ctx, "k", &got); err == nil {
		t.Error("expected error for cancelled context on Get")
	}
}
