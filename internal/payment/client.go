// Package payment creates checkout preferences on the payment
// provider and returns the redirect link for the shopper.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/currency"
)

var _ ports.PaymentProvider = (*Client)(nil)

// Client posts checkout preferences to the provider's REST API. Unit
// prices are sent as integer CLP; the provider does not take decimals
// for this currency.
type Client struct {
	baseURL string
	token   string
	clpRate float64
	http    *http.Client
}

func NewClient(baseURL, token string, clpRate float64, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		clpRate: clpRate,
		http:    &http.Client{Timeout: timeout},
	}
}

type preferenceItem struct {
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	CurrencyID string `json:"currency_id"`
}

type preferenceRequest struct {
	Items []preferenceItem `json:"items"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, items []domain.CartItem, totalCLP int64) (ports.PaymentLink, error) {
	if len(items) == 0 {
		return ports.PaymentLink{}, fmt.Errorf("no items to pay for")
	}

	req := preferenceRequest{Items: make([]preferenceItem, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, preferenceItem{
			Title:      it.Product.Title,
			Quantity:   it.Quantity,
			UnitPrice:  currency.ToCLP(it.Product.Price, c.clpRate),
			CurrencyID: "CLP",
		})
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return ports.PaymentLink{}, fmt.Errorf("encode preference: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(raw))
	if err != nil {
		return ports.PaymentLink{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ports.PaymentLink{}, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return ports.PaymentLink{}, fmt.Errorf("payment provider responded %d", resp.StatusCode)
	}

	var pref preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return ports.PaymentLink{}, fmt.Errorf("decode preference response: %w", err)
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return ports.PaymentLink{}, fmt.Errorf("payment provider returned an incomplete preference")
	}

	return ports.PaymentLink{Reference: pref.ID, InitPoint: pref.InitPoint}, nil
}
