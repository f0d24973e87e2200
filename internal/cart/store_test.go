package cart

import (
	"testing"

	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
)

func TestStoreMintAndUpdate(t *testing.T) {
	t.Parallel()

	store := NewStore()
	token := store.Mint()
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if store.Len() != 1 {
		t.Fatalf("expected one session, got %d", store.Len())
	}

	err := store.Update(token, func(c *Cart) error {
		c.Add(testProduct("1", "Home Jersey", "50"))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	_ = store.Update(token, func(c *Cart) error {
		count = c.Count()
		return nil
	})
	if count != 1 {
		t.Fatalf("expected one entry, got %d", count)
	}
}

func TestStoreMintIsolatesSessions(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := store.Mint()
	second := store.Mint()
	if first == second {
		t.Fatal("tokens must be unique")
	}

	_ = store.Update(first, func(c *Cart) error {
		c.Add(testProduct("1", "Home Jersey", "50"))
		return nil
	})

	var count int
	_ = store.Update(second, func(c *Cart) error {
		count = c.Count()
		return nil
	})
	if count != 0 {
		t.Fatalf("sessions leaked into each other, got %d entries", count)
	}
}

func TestStoreUnknownToken(t *testing.T) {
	t.Parallel()

	store := NewStore()
	err := store.Update("no-such-session", func(c *Cart) error { return nil })
	if err == nil {
		t.Fatal("expected error for unknown token")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error code: %v", err)
	}
}
