package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/kvstore"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/store"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

const testRate = 1000

func laptop() domain.Product { return domain.Product{ID: 1, Title: "Laptop", Price: 1000} }
func phone() domain.Product  { return domain.Product{ID: 2, Title: "Phone", Price: 500} }

func newCart(t *testing.T) (*store.Cart, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	c := store.NewCart(kv, noopLogger{}, testRate)
	c.Hydrate(context.Background())
	return c, kv
}

func TestCart_AddSameProductTwiceMergesLines(t *testing.T) {
	c, _ := newCart(t)
	ctx := context.Background()

	c.Add(ctx, laptop())
	c.Add(ctx, laptop())

	items := c.Items()
	require.Len(t, items, 1, "same product must merge, not duplicate")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_UpdateQuantityToZeroRemoves(t *testing.T) {
	c, _ := newCart(t)
	ctx := context.Background()

	c.Add(ctx, laptop())
	c.Add(ctx, phone())
	require.Len(t, c.Items(), 2)

	c.UpdateQuantity(ctx, laptop().ID, 0)

	items := c.Items()
	require.Len(t, items, 1, "cart length must drop by exactly one")
	assert.Equal(t, phone().ID, items[0].Product.ID)
}

func TestCart_UpdateQuantitySetsExactValue(t *testing.T) {
	c, _ := newCart(t)
	ctx := context.Background()

	c.Add(ctx, laptop())
	c.UpdateQuantity(ctx, laptop().ID, 7)

	assert.Equal(t, 7, c.Items()[0].Quantity)
}

func TestCart_Totals(t *testing.T) {
	c, _ := newCart(t)
	ctx := context.Background()

	c.Add(ctx, laptop()) // 1000 USD
	c.Add(ctx, phone())  // 500 USD
	c.UpdateQuantity(ctx, phone().ID, 3)

	assert.Equal(t, 4, c.TotalItems())
	assert.Equal(t, int64(1_000_000+3*500_000), c.TotalCLP())
}

func TestCart_PersistsAcrossInstances(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	first := store.NewCart(kv, noopLogger{}, testRate)
	first.Hydrate(ctx)
	first.Add(ctx, laptop())

	second := store.NewCart(kv, noopLogger{}, testRate)
	second.Hydrate(ctx)

	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, laptop().ID, items[0].Product.ID)
}

func TestCart_NoWritesBeforeHydration(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	// stored state from a previous session
	seed := store.NewCart(kv, noopLogger{}, testRate)
	seed.Hydrate(ctx)
	seed.Add(ctx, laptop())

	// a fresh instance mutated before hydration must not clobber storage
	fresh := store.NewCart(kv, noopLogger{}, testRate)
	fresh.Clear(ctx)

	check := store.NewCart(kv, noopLogger{}, testRate)
	check.Hydrate(ctx)
	assert.Len(t, check.Items(), 1, "pre-hydration mutation must not reach storage")
}

func TestCart_CorruptBlobFallsBackToEmpty(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	kv.Corrupt("shop-cart")

	c := store.NewCart(kv, noopLogger{}, testRate)
	c.Hydrate(context.Background())

	assert.Empty(t, c.Items(), "corruption is logged and treated as absent")
}

func TestCart_Clear(t *testing.T) {
	c, _ := newCart(t)
	ctx := context.Background()

	c.Add(ctx, laptop())
	c.Clear(ctx)

	assert.Empty(t, c.Items())
	assert.Equal(t, int64(0), c.TotalCLP())
}
