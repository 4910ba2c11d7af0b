package store

import (
	"context"
	"sync"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
)

// Wishlist stores raw product snapshots, unique by id, with toggle
// semantics: the same operation adds an absent product and removes a
// present one.
type Wishlist struct {
	kv  ports.KVStore
	log ports.Logger

	mu       sync.Mutex
	items    []domain.Product
	hydrated bool
}

func NewWishlist(kv ports.KVStore, log ports.Logger) *Wishlist {
	return &Wishlist{kv: kv, log: log}
}

func (w *Wishlist) Hydrate(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.hydrated {
		return
	}
	var items []domain.Product
	if _, err := w.kv.Load(keyWishlist, &items); err != nil {
		w.log.Warnf(ctx, "wishlist blob unreadable, starting empty: %v", err)
		items = nil
	}
	w.items = items
	w.hydrated = true
}

// Toggle adds p when absent and removes it when present. Returns true
// when the product ended up in the wishlist.
func (w *Wishlist) Toggle(ctx context.Context, p domain.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.items {
		if w.items[i].ID == p.ID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist(ctx)
			return false
		}
	}
	w.items = append(w.items, p)
	w.persist(ctx)
	return true
}

// Contains reports whether the product id is wishlisted.
func (w *Wishlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range w.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the snapshots.
func (w *Wishlist) Items() []domain.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.Product(nil), w.items...)
}

// MoveAllToCart drains the wishlist into the cart, one quantity each.
func (w *Wishlist) MoveAllToCart(ctx context.Context, cart *Cart) int {
	w.mu.Lock()
	moved := w.items
	w.items = nil
	w.persist(ctx)
	w.mu.Unlock()

	for _, p := range moved {
		cart.Add(ctx, p)
	}
	return len(moved)
}

func (w *Wishlist) persist(ctx context.Context) {
	if !w.hydrated {
		return
	}
	if err := w.kv.Save(keyWishlist, w.items); err != nil {
		w.log.Errorf(ctx, "wishlist persist failed: %v", err)
		return
	}
	metrics.StoreWrites.WithLabelValues("wishlist").Inc()
}
