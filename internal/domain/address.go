package domain

// Address is a saved shipping address. At most one address in a
// collection carries IsDefault; the first address ever saved becomes
// the default automatically.
type Address struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}
