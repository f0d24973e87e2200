package catalog

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
)

// fetcher pulls the full catalog from the upstream API.
type fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Snapshot holds the catalog loaded from upstream. The whole product set
// is swapped atomically on refresh; readers always see one consistent
// load and receive copies, never live slices.
type Snapshot struct {
	mu       sync.RWMutex
	products []Product
	byID     map[ProductID]Product
	loaded   bool

	source fetcher
	logger *logger.Logger
}

// NewSnapshot builds an empty snapshot backed by the given source.
func NewSnapshot(source fetcher, logg *logger.Logger) (*Snapshot, error) {
	if source == nil {
		return nil, errors.New("catalog source required")
	}
	if logg == nil {
		return nil, errors.New("catalog logger required")
	}
	return &Snapshot{source: source, logger: logg}, nil
}

// Refresh replaces the held catalog with a fresh upstream load. On
// failure the previous catalog is kept untouched.
func (s *Snapshot) Refresh(ctx context.Context) error {
	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		return err
	}

	byID := make(map[ProductID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.loaded = true
	s.mu.Unlock()

	ctx = s.logger.WithField(ctx, "count", len(products))
	s.logger.Info(ctx, "catalog refreshed")
	return nil
}

// Loaded reports whether at least one refresh has succeeded.
func (s *Snapshot) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns a copy of the catalog in upstream order.
func (s *Snapshot) Products() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "catalog not loaded")
	}
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Find resolves one product by id from the current catalog.
func (s *Snapshot) Find(id ProductID) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return Product{}, pkgerrors.New(pkgerrors.CodeUpstream, "catalog not loaded")
	}
	p, ok := s.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}
