package ports

import (
	"context"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// PaymentProvider creates a payment link for a cart. The provider
// receives unit prices already converted to integer CLP and returns an
// opaque redirect URL (init_point) plus the payment reference.
type PaymentProvider interface {
	CreatePaymentLink(ctx context.Context, items []domain.CartItem, totalCLP int64) (PaymentLink, error)
}

// PaymentLink is the result of a successful preference creation.
type PaymentLink struct {
	Reference string `json:"reference"`
	InitPoint string `json:"init_point"`
}
