package domain

// CartItem is one cart line: a product snapshot plus a quantity.
// The collection is keyed by Product.ID, one line per product.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TotalItems sums the quantities of all lines.
func TotalItems(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
