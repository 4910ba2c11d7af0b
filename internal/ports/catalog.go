package ports

import (
	"context"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// CatalogAPI is the outbound contract of the external product API.
// All endpoints are read-only and unauthenticated.
type CatalogAPI interface {
	Products(ctx context.Context, limit int) ([]domain.Product, error)
	Product(ctx context.Context, id int) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	ProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error)
}

// CatalogReadService is the cached read path consumed by the HTTP layer.
type CatalogReadService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	ProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error)
}
