// Package validate checks the persisted collection blobs for
// structural integrity. Used by the validate-store CLI to audit a data
// directory after crashes or manual edits.
package validate

import (
	"errors"
	"fmt"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// ErrInvalidBlob is the sentinel every validation failure wraps.
var ErrInvalidBlob = errors.New("store blob validation failed")

// StoreValidator checks one decoded collection at a time.
type StoreValidator struct{}

func NewStoreValidator() *StoreValidator { return &StoreValidator{} }

// ValidateCart checks line invariants: a known product, a positive
// quantity, no duplicate lines for the same product.
func (v *StoreValidator) ValidateCart(items []domain.CartItem) error {
	seen := make(map[int]bool, len(items))
	for i, it := range items {
		if it.Product.ID <= 0 {
			return fmt.Errorf("%w: cart line %d has no product id", ErrInvalidBlob, i)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: cart line %d has quantity %d", ErrInvalidBlob, i, it.Quantity)
		}
		if it.Product.Price < 0 {
			return fmt.Errorf("%w: cart line %d has negative price", ErrInvalidBlob, i)
		}
		if seen[it.Product.ID] {
			return fmt.Errorf("%w: product %d appears in more than one cart line", ErrInvalidBlob, it.Product.ID)
		}
		seen[it.Product.ID] = true
	}
	return nil
}

// ValidateWishlist checks for product ids and uniqueness.
func (v *StoreValidator) ValidateWishlist(items []domain.Product) error {
	seen := make(map[int]bool, len(items))
	for i, p := range items {
		if p.ID <= 0 {
			return fmt.Errorf("%w: wishlist entry %d has no product id", ErrInvalidBlob, i)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: product %d appears twice in the wishlist", ErrInvalidBlob, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// ValidateAddresses enforces the default invariant: every address has
// an id, ids are unique, and a non-empty book has exactly one default.
func (v *StoreValidator) ValidateAddresses(items []domain.Address) error {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	defaults := 0
	for i, a := range items {
		if a.ID == "" {
			return fmt.Errorf("%w: address %d has no id", ErrInvalidBlob, i)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate address id %s", ErrInvalidBlob, a.ID)
		}
		seen[a.ID] = true
		if a.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		return fmt.Errorf("%w: expected exactly one default address, found %d", ErrInvalidBlob, defaults)
	}
	return nil
}

// ValidateOrders checks ids, statuses and totals.
func (v *StoreValidator) ValidateOrders(items []domain.Order) error {
	seen := make(map[string]bool, len(items))
	for i, o := range items {
		if o.ID == "" {
			return fmt.Errorf("%w: order %d has no id", ErrInvalidBlob, i)
		}
		if seen[o.ID] {
			return fmt.Errorf("%w: duplicate order id %s", ErrInvalidBlob, o.ID)
		}
		seen[o.ID] = true
		switch o.Status {
		case domain.OrderStatusCompleted, domain.OrderStatusPending, domain.OrderStatusCancelled:
		default:
			return fmt.Errorf("%w: order %s has unknown status %q", ErrInvalidBlob, o.ID, o.Status)
		}
		if o.Total < 0 {
			return fmt.Errorf("%w: order %s has negative total", ErrInvalidBlob, o.ID)
		}
		if o.ItemsCount < 1 || len(o.Items) == 0 {
			return fmt.Errorf("%w: order %s has no items", ErrInvalidBlob, o.ID)
		}
		if o.Date.IsZero() {
			return fmt.Errorf("%w: order %s has no date", ErrInvalidBlob, o.ID)
		}
	}
	return nil
}
