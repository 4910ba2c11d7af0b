// Package auth implements the auth provider client and the persistent
// token store backing the session.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
)

var _ ports.AuthProvider = (*Client)(nil)

// Client is a REST client for the external auth provider.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// loginResponse mixes the token with the profile fields in a single
// flat object, as the provider returns them.
type loginResponse struct {
	AccessToken string `json:"accessToken"`
	domain.User
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	var out loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", creds, &out); err != nil {
		return "", nil, err
	}
	if out.AccessToken == "" {
		return "", nil, fmt.Errorf("auth response carried no token")
	}
	user := out.User
	return out.AccessToken, &user, nil
}

func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Register(ctx context.Context, user domain.User, password string) (*domain.User, error) {
	payload := struct {
		domain.User
		Password string `json:"password"`
	}{User: user, Password: password}

	var created domain.User
	if err := c.doJSON(ctx, http.MethodPost, "/users/add", "", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, dst any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("auth provider responded %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	return nil
}
