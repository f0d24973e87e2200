package cart

import (
	"sync"

	"github.com/google/uuid"

	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
)

// Store keeps per-session carts in memory only. Carts are never
// persisted: a process restart drops every session, the same way a page
// reload dropped the original in-page cart.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

// Mint creates an empty cart and returns its session token.
func (s *Store) Mint() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.carts[token] = New()
	s.mu.Unlock()
	return token
}

// Update runs fn against the cart for the given token while holding the
// store lock. The cart must not escape fn.
func (s *Store) Update(token string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[token]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart session not found")
	}
	return fn(c)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
