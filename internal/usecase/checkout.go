package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/checkout"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/store"
)

var (
	ErrInvalidForm = errors.New("checkout form has invalid fields")
	ErrEmptyCart   = errors.New("cart is empty")
)

// Checkout drives the purchase flow: validate the shipping form, hand
// the cart to the payment provider, then record the completed order
// exactly once per payment reference.
type Checkout struct {
	form    *checkout.Form
	cart    *store.Cart
	orders  *store.OrderLog
	payment ports.PaymentProvider
	log     ports.Logger

	mu        sync.Mutex
	processed map[string]bool
	now       func() time.Time
}

func NewCheckout(form *checkout.Form, cart *store.Cart, orders *store.OrderLog, payment ports.PaymentProvider, log ports.Logger) *Checkout {
	return &Checkout{
		form:      form,
		cart:      cart,
		orders:    orders,
		payment:   payment,
		log:       log,
		processed: make(map[string]bool),
		now:       time.Now,
	}
}

// Form exposes the shipping form for field updates and autofill.
func (c *Checkout) Form() *checkout.Form { return c.form }

// Start validates the form and the cart, then asks the payment
// provider for a redirect link. An invalid form marks every field
// touched so the caller can surface all errors at once.
func (c *Checkout) Start(ctx context.Context) (ports.PaymentLink, error) {
	if !c.form.IsValid() {
		c.form.MarkAllTouched()
		return ports.PaymentLink{}, ErrInvalidForm
	}
	items := c.cart.Items()
	if len(items) == 0 {
		return ports.PaymentLink{}, ErrEmptyCart
	}

	link, err := c.payment.CreatePaymentLink(ctx, items, c.cart.TotalCLP())
	if err != nil {
		c.log.Errorf(ctx, "payment link creation failed err=%v", err)
		return ports.PaymentLink{}, err
	}
	c.log.Infof(ctx, "payment link created ref=%s", link.Reference)
	return link, nil
}

// Confirm records the order for a payment reference and empties the
// cart. Repeating a reference returns the already recorded order
// without touching the cart again, so a double redirect from the
// payment provider cannot duplicate an order.
func (c *Checkout) Confirm(ctx context.Context, reference string) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.processed[reference] {
		if o, ok := c.orders.ByID(reference); ok {
			c.log.Warnf(ctx, "duplicate confirmation ignored ref=%s", reference)
			return o, nil
		}
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		ID:         reference,
		Items:      items,
		Total:      c.cart.TotalCLP(),
		ItemsCount: c.cart.TotalItems(),
		Date:       c.now(),
		Status:     domain.OrderStatusCompleted,
	}
	c.orders.Append(ctx, order)
	c.processed[reference] = true
	c.cart.Clear(ctx)
	c.log.Infof(ctx, "order recorded ref=%s items=%d total=%d", reference, order.ItemsCount, order.Total)
	return order, nil
}
