package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jerseyfront/jerseyfront/internal/catalog"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
)

// productFinder resolves products from the loaded catalog snapshot.
type productFinder interface {
	Find(id catalog.ProductID) (catalog.Product, error)
}

// Service exposes the session cart operations. An empty token mints a
// new session; every view carries the token the caller must present on
// the next request.
type Service interface {
	Get(ctx context.Context, token string) (*View, error)
	AddItem(ctx context.Context, token string, id catalog.ProductID) (*View, error)
	IncreaseItem(ctx context.Context, token string, id catalog.ProductID) (*View, error)
	DecreaseItem(ctx context.Context, token string, id catalog.ProductID) (*View, error)
	RemoveItem(ctx context.Context, token string, id catalog.ProductID) (*View, error)
	Checkout(ctx context.Context, token string) (*Receipt, error)
}

// View is the cart snapshot handed to the render layer. Total is the sum
// of price times quantity; Count is the number of line items.
type View struct {
	Token   string          `json:"cart_token"`
	Entries []Entry         `json:"entries"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// Receipt summarizes a completed checkout.
type Receipt struct {
	Token string          `json:"cart_token"`
	Total decimal.Decimal `json:"total"`
	Items int             `json:"items"`
}

type service struct {
	store   *Store
	catalog productFinder
	logger  *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(store *Store, finder productFinder, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if finder == nil {
		return nil, fmt.Errorf("catalog finder required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, catalog: finder, logger: logg}, nil
}

func (s *service) Get(ctx context.Context, token string) (*View, error) {
	token = s.ensureSession(ctx, token)
	return s.view(token)
}

func (s *service) AddItem(ctx context.Context, token string, id catalog.ProductID) (*View, error) {
	product, err := s.catalog.Find(id)
	if err != nil {
		return nil, err
	}

	token = s.ensureSession(ctx, token)
	if err := s.store.Update(token, func(c *Cart) error {
		c.Add(product)
		return nil
	}); err != nil {
		return nil, err
	}
	return s.view(token)
}

func (s *service) IncreaseItem(ctx context.Context, token string, id catalog.ProductID) (*View, error) {
	return s.mutate(token, func(c *Cart) error { return c.Increase(id) })
}

func (s *service) DecreaseItem(ctx context.Context, token string, id catalog.ProductID) (*View, error) {
	return s.mutate(token, func(c *Cart) error { return c.Decrease(id) })
}

func (s *service) RemoveItem(ctx context.Context, token string, id catalog.ProductID) (*View, error) {
	return s.mutate(token, func(c *Cart) error { return c.Remove(id) })
}

func (s *service) Checkout(ctx context.Context, token string) (*Receipt, error) {
	var receipt *Receipt
	if err := s.store.Update(token, func(c *Cart) error {
		total := c.Total()
		items := c.Count()
		if err := c.Checkout(); err != nil {
			return err
		}
		receipt = &Receipt{Token: token, Total: total, Items: items}
		return nil
	}); err != nil {
		return nil, err
	}

	ctx = s.logger.WithFields(ctx, map[string]any{
		"cart_token": token,
		"items":      receipt.Items,
		"total":      receipt.Total.String(),
	})
	s.logger.Info(ctx, "cart checked out")
	return receipt, nil
}

// ensureSession returns the given token, or mints a fresh session when
// the caller has none yet.
func (s *service) ensureSession(ctx context.Context, token string) string {
	if token != "" {
		return token
	}
	token = s.store.Mint()
	s.logger.Info(s.logger.WithCartToken(ctx, token), "cart session created")
	return token
}

func (s *service) mutate(token string, fn func(c *Cart) error) (*View, error) {
	if err := s.store.Update(token, fn); err != nil {
		return nil, err
	}
	return s.view(token)
}

func (s *service) view(token string) (*View, error) {
	var view *View
	if err := s.store.Update(token, func(c *Cart) error {
		view = &View{
			Token:   token,
			Entries: c.Entries(),
			Total:   c.Total(),
			Count:   c.Count(),
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return view, nil
}
