package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/jerseyfront/jerseyfront/internal/catalog"
	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
)

type upstreamWriter interface {
	CreateProduct(ctx context.Context, input catalog.ProductInput) error
	UpdateProduct(ctx context.Context, id catalog.ProductID, input catalog.ProductInput) error
	DeleteProduct(ctx context.Context, id catalog.ProductID) error
}

type catalogRefresher interface {
	Refresh(ctx context.Context) error
}

// Service proxies admin CRUD operations to the upstream product API.
// Every successful mutation refreshes the catalog snapshot so the
// storefront sees the change on its next read.
type Service interface {
	CreateProduct(ctx context.Context, input catalog.ProductInput) error
	UpdateProduct(ctx context.Context, id catalog.ProductID, input catalog.ProductInput) error
	DeleteProduct(ctx context.Context, id catalog.ProductID) error
}

type service struct {
	upstream upstreamWriter
	snapshot catalogRefresher
	logger   *logger.Logger
}

// NewService builds the admin proxy service.
func NewService(upstream upstreamWriter, snapshot catalogRefresher, logg *logger.Logger) (Service, error) {
	if upstream == nil {
		return nil, fmt.Errorf("upstream client required")
	}
	if snapshot == nil {
		return nil, fmt.Errorf("catalog snapshot required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{upstream: upstream, snapshot: snapshot, logger: logg}, nil
}

func (s *service) CreateProduct(ctx context.Context, input catalog.ProductInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if err := s.upstream.CreateProduct(ctx, input); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *service) UpdateProduct(ctx context.Context, id catalog.ProductID, input catalog.ProductInput) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := validateInput(input); err != nil {
		return err
	}
	if err := s.upstream.UpdateProduct(ctx, id, input); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id catalog.ProductID) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.upstream.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// refresh pulls the catalog again after a mutation. The mutation already
// succeeded upstream, so a failed refresh is logged and the stale
// snapshot kept until the next one.
func (s *service) refresh(ctx context.Context) {
	if err := s.snapshot.Refresh(ctx); err != nil {
		s.logger.Error(ctx, "catalog refresh after admin mutation failed", err)
	}
}

func validateInput(input catalog.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price must be non-negative")
	}
	return nil
}
