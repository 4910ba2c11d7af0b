package ports

import (
	"context"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
)

// AuthProvider is the outbound contract of the external auth service.
// Token lifecycle (issuance, expiry) belongs to the provider; this
// layer only stores and forwards the opaque access token.
type AuthProvider interface {
	Login(ctx context.Context, creds domain.Credentials) (token string, user *domain.User, err error)
	Me(ctx context.Context, token string) (*domain.User, error)
	Register(ctx context.Context, user domain.User, password string) (*domain.User, error)
}

// TokenStore keeps the current access token in persistent storage.
type TokenStore interface {
	Token() (string, bool)
	SetToken(token string) error
	ClearToken() error
}
