package store

import (
	"context"
	"sync"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
)

// OrderLog is the append-only purchase history, newest first.
// Idempotence per payment reference is enforced by the checkout
// service's one-shot guard, not here.
type OrderLog struct {
	kv  ports.KVStore
	log ports.Logger

	mu       sync.Mutex
	orders   []domain.Order
	hydrated bool
}

func NewOrderLog(kv ports.KVStore, log ports.Logger) *OrderLog {
	return &OrderLog{kv: kv, log: log}
}

func (o *OrderLog) Hydrate(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.hydrated {
		return
	}
	var orders []domain.Order
	if _, err := o.kv.Load(keyOrders, &orders); err != nil {
		o.log.Warnf(ctx, "orders blob unreadable, starting empty: %v", err)
		orders = nil
	}
	o.orders = orders
	o.hydrated = true
}

// Append prepends the order so the history stays newest-first.
func (o *OrderLog) Append(ctx context.Context, order domain.Order) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = append([]domain.Order{order}, o.orders...)
	o.persist(ctx)
	metrics.OrdersCreated.Inc()
}

// List returns a copy of the history, newest first.
func (o *OrderLog) List() []domain.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]domain.Order(nil), o.orders...)
}

// ByID looks an order up by its payment reference.
func (o *OrderLog) ByID(id string) (domain.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, ord := range o.orders {
		if ord.ID == id {
			return ord, true
		}
	}
	return domain.Order{}, false
}

func (o *OrderLog) persist(ctx context.Context) {
	if !o.hydrated {
		return
	}
	if err := o.kv.Save(keyOrders, o.orders); err != nil {
		o.log.Errorf(ctx, "orders persist failed: %v", err)
		return
	}
	metrics.StoreWrites.WithLabelValues("orders").Inc()
}
