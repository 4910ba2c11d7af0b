package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/kvstore"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/store"
)

func newWishlist(t *testing.T) *store.Wishlist {
	t.Helper()
	w := store.NewWishlist(kvstore.NewMemoryStore(), noopLogger{})
	w.Hydrate(context.Background())
	return w
}

func TestWishlist_ToggleAddsThenRemoves(t *testing.T) {
	w := newWishlist(t)
	ctx := context.Background()

	added := w.Toggle(ctx, laptop())
	assert.True(t, added)
	assert.True(t, w.Contains(laptop().ID))

	added = w.Toggle(ctx, laptop())
	assert.False(t, added)
	assert.False(t, w.Contains(laptop().ID))
	assert.Empty(t, w.Items())
}

func TestWishlist_UniqueByID(t *testing.T) {
	w := newWishlist(t)
	ctx := context.Background()

	w.Toggle(ctx, laptop())
	w.Toggle(ctx, phone())

	require.Len(t, w.Items(), 2)
}

func TestWishlist_MoveAllToCart(t *testing.T) {
	w := newWishlist(t)
	c, _ := newCart(t)
	ctx := context.Background()

	w.Toggle(ctx, laptop())
	w.Toggle(ctx, phone())
	c.Add(ctx, laptop()) // already one in the cart

	moved := w.MoveAllToCart(ctx, c)

	assert.Equal(t, 2, moved)
	assert.Empty(t, w.Items(), "wishlist drains completely")

	items := c.Items()
	require.Len(t, items, 2)
	for _, it := range items {
		if it.Product.ID == laptop().ID {
			assert.Equal(t, 2, it.Quantity, "moving merges with existing cart lines")
		}
	}
}

func TestWishlist_PersistsAcrossInstances(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	first := store.NewWishlist(kv, noopLogger{})
	first.Hydrate(ctx)
	first.Toggle(ctx, laptop())

	second := store.NewWishlist(kv, noopLogger{})
	second.Hydrate(ctx)
	assert.True(t, second.Contains(laptop().ID))
}
