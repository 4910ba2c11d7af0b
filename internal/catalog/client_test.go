package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/catalog"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "2" {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Laptop","price":999.5},{"id":2,"title":"Phone","price":499}],"total":2,"skip":0,"limit":2}`))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"title":"Laptop","category":"laptops","price":999.5}`))
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"slug":"beauty","name":"Beauty","url":"https://x/products/category/beauty"}]`))
	})
	mux.HandleFunc("/products/category/beauty", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":7,"title":"Mascara","category":"beauty"}],"total":1,"skip":0,"limit":0}`))
	})
	return httptest.NewServer(mux)
}

func TestClient_Products(t *testing.T) {
	srv := newCatalogServer(t)
	defer srv.Close()

	c := catalog.NewClient(srv.URL, 2*time.Second)
	got, err := c.Products(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Laptop" || got[1].ID != 2 {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestClient_Product(t *testing.T) {
	srv := newCatalogServer(t)
	defer srv.Close()

	c := catalog.NewClient(srv.URL, 2*time.Second)
	got, err := c.Product(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 || got.Category != "laptops" {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestClient_Categories(t *testing.T) {
	srv := newCatalogServer(t)
	defer srv.Close()

	c := catalog.NewClient(srv.URL, 2*time.Second)
	got, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "beauty" {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestClient_ProductsByCategory(t *testing.T) {
	srv := newCatalogServer(t)
	defer srv.Close()

	c := catalog.NewClient(srv.URL, 2*time.Second)
	got, err := c.ProductsByCategory(context.Background(), "beauty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Mascara" {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestClient_NonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, 2*time.Second)
	if _, err := c.Categories(context.Background()); err == nil {
		t.Fatalf("want error on non-200 response")
	}
}
