package usecase

import (
	"context"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/catalog"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
)

var _ ports.CatalogReadService = (*Storefront)(nil)

// Storefront is the cached catalog read path (no transport knowledge).
// The loaders own cache keys and freshness; this layer adds logging
// and the empty-fallback policy: a fetch failure is reported but the
// caller still receives whatever data (possibly none) is available, so
// the app keeps rendering.
type Storefront struct {
	loaders *catalog.Loaders
	log     ports.Logger
}

// NewStorefront is the DI constructor.
func NewStorefront(loaders *catalog.Loaders, log ports.Logger) *Storefront {
	return &Storefront{loaders: loaders, log: log}
}

func (s *Storefront) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.loaders.Products(ctx)
	if err != nil {
		s.log.Errorf(ctx, "products fetch failed err=%v", err)
		return products, err
	}
	return products, nil
}

func (s *Storefront) Product(ctx context.Context, id int) (*domain.Product, error) {
	p, err := s.loaders.Product(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "product fetch failed id=%d err=%v", id, err)
		return p, err
	}
	return p, nil
}

func (s *Storefront) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.loaders.Categories(ctx)
	if err != nil {
		s.log.Errorf(ctx, "categories fetch failed err=%v", err)
		return cats, err
	}
	return cats, nil
}

func (s *Storefront) ProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	products, err := s.loaders.ProductsByCategory(ctx, slug)
	if err != nil {
		s.log.Errorf(ctx, "category products fetch failed slug=%s err=%v", slug, err)
		return products, err
	}
	return products, nil
}

// BustCache drops all cached catalog data; the next reads refetch.
func (s *Storefront) BustCache(ctx context.Context) {
	s.loaders.Invalidate()
	s.log.Infof(ctx, "catalog cache busted")
}
