// Package catalog talks to the external product API and layers the
// TTL cache on top of it through per-key loaders.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
)

var _ ports.CatalogAPI = (*Client)(nil)

// Client is a thin REST client for the catalog provider. All endpoints
// are unauthenticated GETs returning JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Products(ctx context.Context, limit int) ([]domain.Product, error) {
	var page domain.ProductPage
	path := fmt.Sprintf("/products?limit=%d", limit)
	if err := c.getJSON(ctx, "products", path, &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	if err := c.getJSON(ctx, "product", fmt.Sprintf("/products/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.getJSON(ctx, "categories", "/products/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	var page domain.ProductPage
	path := "/products/category/" + url.PathEscape(slug)
	if err := c.getJSON(ctx, "category_products", path, &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogFetches.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogFetches.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("catalog responded %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		metrics.CatalogFetches.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("decode catalog response: %w", err)
	}

	metrics.CatalogFetches.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
