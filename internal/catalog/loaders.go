package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/resource"
)

// Cache keys. Parameterized keys embed the parameter so two slugs (or
// ids) never collide and each ages out on its own schedule.
const (
	keyCategories = "products:categories"
)

func keyProducts(limit int) string   { return fmt.Sprintf("products:all:limit=%d", limit) }
func keyCategory(slug string) string { return "products:category:" + slug }
func keyProduct(id int) string       { return fmt.Sprintf("products:id:%d", id) }

// Loaders bind catalog API calls to cache keys through resource
// instances. Each distinct key owns one resource, created lazily, so
// the "already fetched" bookkeeping is per key.
type Loaders struct {
	api   ports.CatalogAPI
	cache ports.Cache
	limit int

	mu         sync.Mutex
	products   *resource.Resource[[]domain.Product]
	categories *resource.Resource[[]domain.Category]
	byCategory map[string]*resource.Resource[[]domain.Product]
	byID       map[int]*resource.Resource[*domain.Product]
}

func NewLoaders(api ports.CatalogAPI, cache ports.Cache, productLimit int) *Loaders {
	if productLimit <= 0 {
		productLimit = 100
	}
	return &Loaders{
		api:        api,
		cache:      cache,
		limit:      productLimit,
		byCategory: make(map[string]*resource.Resource[[]domain.Product]),
		byID:       make(map[int]*resource.Resource[*domain.Product]),
	}
}

// Products returns the full product list, served from cache while
// fresh. A fetch failure comes back as an error with whatever stale
// data the resource still holds.
func (l *Loaders) Products(ctx context.Context) ([]domain.Product, error) {
	l.mu.Lock()
	if l.products == nil {
		l.products = resource.New[[]domain.Product](l.cache, keyProducts(l.limit))
	}
	res := l.products
	l.mu.Unlock()

	err := res.EnsureFetched(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return l.api.Products(ctx, l.limit)
	})
	st := res.State()
	if err != nil {
		return st.Data, err
	}
	return st.Data, nil
}

// Categories returns the category list under its fixed key.
func (l *Loaders) Categories(ctx context.Context) ([]domain.Category, error) {
	l.mu.Lock()
	if l.categories == nil {
		l.categories = resource.New[[]domain.Category](l.cache, keyCategories)
	}
	res := l.categories
	l.mu.Unlock()

	err := res.EnsureFetched(ctx, func(ctx context.Context) ([]domain.Category, error) {
		return l.api.Categories(ctx)
	})
	st := res.State()
	if err != nil {
		return st.Data, err
	}
	return st.Data, nil
}

// ProductsByCategory keeps one resource per slug.
func (l *Loaders) ProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	l.mu.Lock()
	res, ok := l.byCategory[slug]
	if !ok {
		res = resource.New[[]domain.Product](l.cache, keyCategory(slug))
		l.byCategory[slug] = res
	}
	l.mu.Unlock()

	err := res.EnsureFetched(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return l.api.ProductsByCategory(ctx, slug)
	})
	st := res.State()
	if err != nil {
		return st.Data, err
	}
	return st.Data, nil
}

// Product keeps one resource per product id.
func (l *Loaders) Product(ctx context.Context, id int) (*domain.Product, error) {
	l.mu.Lock()
	res, ok := l.byID[id]
	if !ok {
		res = resource.New[*domain.Product](l.cache, keyProduct(id))
		l.byID[id] = res
	}
	l.mu.Unlock()

	err := res.EnsureFetched(ctx, func(ctx context.Context) (*domain.Product, error) {
		return l.api.Product(ctx, id)
	})
	st := res.State()
	if err != nil {
		return st.Data, err
	}
	return st.Data, nil
}

// Invalidate busts the shared cache and every per-key fetched marker.
func (l *Loaders) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cache != nil {
		l.cache.Clear()
	}
	if l.products != nil {
		l.products.Invalidate()
	}
	if l.categories != nil {
		l.categories.Invalidate()
	}
	for _, r := range l.byCategory {
		r.Invalidate()
	}
	for _, r := range l.byID {
		r.Invalidate()
	}
}
