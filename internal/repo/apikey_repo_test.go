package repo

import (
	"context"
	"testing"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

func TestCreateAPIKey_PersistsHashOnly(t *testing.T) {
	db := newRepoDB(t, &domain.APIKey{})
	ctx := context.Background()

	k, err := CreateAPIKey(ctx, db, "user-1", "$2a$10$fakehashvalue")
	if err != nil {
		t.Fatalf("CreateAPIKey: %v", err)
	}
	if k.UserID != "user-1" || k.KeyHash != "$2a$10$fakehashvalue" {
		t.Fatalf("unexpected APIKey fields: %+v", k)
	}

	var got domain.APIKey
	if err := db.First(&got, "user_id = ?", "user-1").Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if got.KeyHash != k.KeyHash {
		t.Fatalf("hash round-trip mismatch: %+v", got)
	}
}

func TestCreateAPIKey_DuplicateUserID_Errors(t *testing.T) {
	db := newRepoDB(t, &domain.APIKey{})
	ctx := context.Background()

	if _, err := CreateAPIKey(ctx, db, "user-1", "h1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := CreateAPIKey(ctx, db, "user-1", "h2"); err == nil {
		t.Fatalf("expected primary-key violation for duplicate user id")
	}
}

func TestListAPIKeys_DeterministicOrder(t *testing.T) {
	db := newRepoDB(t, &domain.APIKey{})
	ctx := context.Background()

	// Insert out of lexical order.
	for _, id := range []string{"b-user", "a-user", "c-user"} {
		if _, err := CreateAPIKey(ctx, db, id, "hash-"+id); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	keys, err := ListAPIKeys(ctx, db)
	if err != nil {
		t.Fatalf("ListAPIKeys: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	for i, want := range []string{"a-user", "b-user", "c-user"} {
		if keys[i].UserID != want {
			t.Fatalf("key %d: expected %q, got %q", i, want, keys[i].UserID)
		}
	}
}

func TestListAPIKeys_EmptyStore(t *testing.T) {
	db := newRepoDB(t, &domain.APIKey{})
	keys, err := ListAPIKeys(context.Background(), db)
	if err != nil {
		t.Fatalf("ListAPIKeys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys, got %d", len(keys))
	}
}
