package session

import (
	"context"
	"testing"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	adminID, ok, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || adminID != 42 {
		t.Fatalf("got (%d, %t), want (42, true)", adminID, ok)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, token); ok {
		t.Fatal("session survived delete")
	}

	// Deleting an unknown token is not an error.
	if err := store.Delete(ctx, "no-such-token"); err != nil {
		t.Fatalf("delete unknown token: %v", err)
	}
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 100 {
		token, err := store.Create(ctx, 1)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	adminID, ok, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || adminID != 0 {
		t.Fatalf("got (%d, %t), want (0, false)", adminID, ok)
	}
}
