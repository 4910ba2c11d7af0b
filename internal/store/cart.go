package store

import (
	"context"
	"sync"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/currency"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
)

// Cart is the shopping cart collection, keyed by product id with one
// line per product. Totals are derived on demand, prices converted to
// CLP per line before summing.
type Cart struct {
	kv      ports.KVStore
	log     ports.Logger
	clpRate float64

	mu       sync.Mutex
	items    []domain.CartItem
	hydrated bool
}

func NewCart(kv ports.KVStore, log ports.Logger, clpRate float64) *Cart {
	return &Cart{kv: kv, log: log, clpRate: clpRate}
}

// Hydrate reads the stored cart once. A corrupt blob is logged and
// treated as absent; the cart starts empty either way.
func (c *Cart) Hydrate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hydrated {
		return
	}
	var items []domain.CartItem
	if _, err := c.kv.Load(keyCart, &items); err != nil {
		c.log.Warnf(ctx, "cart blob unreadable, starting empty: %v", err)
		items = nil
	}
	c.items = items
	c.hydrated = true
}

// Add appends a new line with quantity 1, or bumps the quantity of an
// existing line for the same product.
func (c *Cart) Add(ctx context.Context, p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			c.persist(ctx)
			return
		}
	}
	c.items = append(c.items, domain.CartItem{Product: p, Quantity: 1})
	c.persist(ctx)
}

// UpdateQuantity sets the line quantity; q <= 0 removes the line.
// No upper clamp here, stock caps belong to the caller.
func (c *Cart) UpdateQuantity(ctx context.Context, productID, q int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		if q <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = q
		}
		c.persist(ctx)
		return
	}
}

// Remove drops the line entirely.
func (c *Cart) Remove(ctx context.Context, productID int) {
	c.UpdateQuantity(ctx, productID, 0)
}

// Clear empties the cart (after a completed purchase).
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist(ctx)
}

// Items returns a copy of the lines.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem(nil), c.items...)
}

// TotalItems sums quantities across lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.TotalItems(c.items)
}

// TotalCLP totals the cart in pesos, converting each unit price first
// so the sum matches the per-line amounts the payment provider sees.
func (c *Cart) TotalCLP() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, it := range c.items {
		total += currency.ToCLP(it.Product.Price, c.clpRate) * int64(it.Quantity)
	}
	return total
}

// persist writes the full collection; callers hold the lock. Before
// hydration it is a no-op.
func (c *Cart) persist(ctx context.Context) {
	if !c.hydrated {
		return
	}
	if err := c.kv.Save(keyCart, c.items); err != nil {
		c.log.Errorf(ctx, "cart persist failed: %v", err)
		return
	}
	metrics.StoreWrites.WithLabelValues("cart").Inc()
}
