// Package store implements the persistent client collections: cart,
// wishlist, address book and order history. Each collection hydrates
// once from the key-value store at startup and writes the full
// serialized collection back on every change after that. Writes never
// fire before hydration completes, so stored data cannot be clobbered
// by an empty initial state.
package store

// Storage keys. Fixed string constants, one blob per collection.
const (
	keyCart      = "shop-cart"
	keyWishlist  = "shop-wishlist"
	keyAddresses = "shop-addresses"
	keyOrders    = "shop-orders"
)
