package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// Result is one validated blob.
type Result struct {
	File string
	Err  error
}

// ValidateDir audits every known collection blob in dir and writes a
// line per file to ow. Unknown files are skipped. The returned summary
// counts checked and failed blobs; the error is non-nil when any blob
// failed.
func ValidateDir(v *StoreValidator, dir string, ow io.Writer) (string, error) {
	type check struct {
		name string
		fn   func([]byte) error
	}
	checks := []check{
		{"shop-cart.json", func(raw []byte) error {
			var items []domain.CartItem
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBlob, err)
			}
			return v.ValidateCart(items)
		}},
		{"shop-wishlist.json", func(raw []byte) error {
			var items []domain.Product
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBlob, err)
			}
			return v.ValidateWishlist(items)
		}},
		{"shop-addresses.json", func(raw []byte) error {
			var items []domain.Address
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBlob, err)
			}
			return v.ValidateAddresses(items)
		}},
		{"shop-orders.json", func(raw []byte) error {
			var items []domain.Order
			if err := json.Unmarshal(raw, &items); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBlob, err)
			}
			return v.ValidateOrders(items)
		}},
	}

	checked, failed := 0, 0
	var firstErr error

	for _, c := range checks {
		path := filepath.Join(dir, c.name)
		raw, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", c.name, err)
		}

		checked++
		if err := c.fn(raw); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(ow, "FAIL %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(ow, "OK   %s\n", c.name)
	}

	summary := fmt.Sprintf("checked=%d failed=%d", checked, failed)
	return summary, firstErr
}
