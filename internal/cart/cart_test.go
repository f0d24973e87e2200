package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jerseyfront/jerseyfront/internal/catalog"
	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
)

func testProduct(id, name string, price string) catalog.Product {
	return catalog.Product{
		ID:     catalog.ProductID(id),
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Images: []string{"http://localhost:8000/images/" + id + ".jpg"},
	}
}

func TestAddTwiceKeepsSingleEntry(t *testing.T) {
	t.Parallel()

	c := New()
	p := testProduct("1", "Home Jersey", "50")
	c.Add(p)
	c.Add(p)

	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", entries[0].Quantity)
	}
}

func TestAddCapturesDisplayFieldsOnce(t *testing.T) {
	t.Parallel()

	c := New()
	p := testProduct("1", "Home Jersey", "50")
	c.Add(p)

	// A later add with changed catalog data must not refresh the entry.
	changed := p
	changed.Name = "Renamed"
	changed.Price = decimal.RequireFromString("99")
	c.Add(changed)

	entries := c.Entries()
	if entries[0].Name != "Home Jersey" {
		t.Fatalf("entry name was refreshed: %q", entries[0].Name)
	}
	if !entries[0].Price.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("entry price was refreshed: %s", entries[0].Price)
	}
}

func TestDecreaseAtOneRemovesEntry(t *testing.T) {
	t.Parallel()

	c := New()
	p := testProduct("1", "Home Jersey", "50")
	c.Add(p)

	if err := c.Decrease(p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Count(); got != 0 {
		t.Fatalf("expected empty cart, got %d entries", got)
	}
}

func TestDecreaseAboveOneKeepsEntry(t *testing.T) {
	t.Parallel()

	c := New()
	p := testProduct("1", "Home Jersey", "50")
	c.Add(p)
	c.Add(p)

	if err := c.Decrease(p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := c.Entries()
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("expected single entry with quantity 1, got %+v", entries)
	}
}

func TestTotalAndCount(t *testing.T) {
	t.Parallel()

	c := New()
	a := testProduct("1", "Home Jersey", "10.00")
	b := testProduct("2", "Away Jersey", "5.50")
	c.Add(a)
	c.Add(a)
	c.Add(b)

	if !c.Total().Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("expected total 25.50, got %s", c.Total())
	}
	// Two line items, not three units.
	if got := c.Count(); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
}

func TestCheckoutEmptiesCart(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(testProduct("1", "Home Jersey", "50"))

	if err := c.Checkout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Count() != 0 {
		t.Fatalf("expected cart to be empty after checkout")
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.Checkout()
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeEmptyCart {
		t.Fatalf("unexpected error code: %v", err)
	}
	if c.Count() != 0 {
		t.Fatalf("empty checkout must not change state")
	}
}

func TestMutationsOnMissingEntry(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(testProduct("1", "Home Jersey", "50"))

	for _, op := range []func(catalog.ProductID) error{c.Increase, c.Decrease, c.Remove} {
		err := op(catalog.ProductID("missing"))
		if err == nil {
			t.Fatal("expected error for missing entry")
		}
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("unexpected error code: %v", err)
		}
	}

	// The existing entry must be untouched.
	entries := c.Entries()
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("cart state corrupted: %+v", entries)
	}
}

func TestRemoveDeletesUnconditionally(t *testing.T) {
	t.Parallel()

	c := New()
	p := testProduct("1", "Home Jersey", "50")
	c.Add(p)
	c.Add(p)
	c.Add(p)

	if err := c.Remove(p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Count() != 0 {
		t.Fatalf("expected empty cart after remove")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(testProduct("1", "Home Jersey", "50"))

	entries := c.Entries()
	entries[0].Quantity = 99

	if got := c.Entries()[0].Quantity; got != 1 {
		t.Fatalf("mutating the snapshot leaked into the cart: %d", got)
	}
}
