package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jerseyfront/jerseyfront/internal/catalog"
	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
)

// Entry is one cart line item. Display fields are copied from the
// product at add time and never refreshed afterwards, so later catalog
// changes do not touch existing entries.
type Entry struct {
	ProductID catalog.ProductID `json:"product_id"`
	Name      string            `json:"name"`
	Price     decimal.Decimal   `json:"price"`
	Image     string            `json:"image"`
	Quantity  int               `json:"quantity"`
}

// Subtotal is the entry price times its quantity.
func (e Entry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is an ordered collection of entries with at most one entry per
// product. Quantities never drop below one; decreasing past one removes
// the entry entirely.
type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add puts the product in the cart, or bumps its quantity when an entry
// for it already exists. Price, name, and image stay as captured by the
// first add.
func (c *Cart) Add(p catalog.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.entries[i].Quantity++
		return
	}
	c.entries = append(c.entries, Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.PrimaryImage(),
		Quantity:  1,
	})
}

// Increase bumps the quantity of an existing entry.
func (c *Cart) Increase(id catalog.ProductID) error {
	i := c.indexOf(id)
	if i < 0 {
		return errNotInCart()
	}
	c.entries[i].Quantity++
	return nil
}

// Decrease lowers the quantity of an existing entry, removing the entry
// when the quantity would reach zero.
func (c *Cart) Decrease(id catalog.ProductID) error {
	i := c.indexOf(id)
	if i < 0 {
		return errNotInCart()
	}
	if c.entries[i].Quantity <= 1 {
		c.removeAt(i)
		return nil
	}
	c.entries[i].Quantity--
	return nil
}

// Remove deletes the entry unconditionally.
func (c *Cart) Remove(id catalog.ProductID) error {
	i := c.indexOf(id)
	if i < 0 {
		return errNotInCart()
	}
	c.removeAt(i)
	return nil
}

// Checkout clears the cart. An empty cart is rejected with no state
// change.
func (c *Cart) Checkout() error {
	if len(c.entries) == 0 {
		return pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}
	c.entries = nil
	return nil
}

// Entries returns a copy of the line items in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total sums price times quantity across all entries.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// Count reports distinct line items, not total units. The cart badge has
// always shown line items.
func (c *Cart) Count() int {
	return len(c.entries)
}

func (c *Cart) indexOf(id catalog.ProductID) int {
	for i, e := range c.entries {
		if e.ProductID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
}

func errNotInCart() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
}
