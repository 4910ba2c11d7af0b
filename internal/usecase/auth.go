package usecase

import (
	"context"
	"errors"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/checkout"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
)

var ErrNotLoggedIn = errors.New("no active session")

// Auth holds the current session. On login the user's profile is
// offered to the checkout form, which fills only fields the shopper
// has not touched yet.
type Auth struct {
	provider ports.AuthProvider
	tokens   ports.TokenStore
	form     *checkout.Form
	log      ports.Logger
}

func NewAuth(provider ports.AuthProvider, tokens ports.TokenStore, form *checkout.Form, log ports.Logger) *Auth {
	return &Auth{provider: provider, tokens: tokens, form: form, log: log}
}

func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	token, user, err := a.provider.Login(ctx, creds)
	if err != nil {
		a.log.Warnf(ctx, "login failed user=%s err=%v", creds.Username, err)
		return nil, err
	}
	if err := a.tokens.SetToken(token); err != nil {
		a.log.Errorf(ctx, "token persist failed err=%v", err)
	}
	if user != nil {
		a.form.AutoFill(*user)
	}
	a.log.Infof(ctx, "login ok user=%s", creds.Username)
	return user, nil
}

// Me resolves the profile for the stored token.
func (a *Auth) Me(ctx context.Context) (*domain.User, error) {
	token, ok := a.tokens.Token()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	user, err := a.provider.Me(ctx, token)
	if err != nil {
		a.log.Warnf(ctx, "profile fetch failed err=%v", err)
		return nil, err
	}
	return user, nil
}

func (a *Auth) Register(ctx context.Context, user domain.User, password string) (*domain.User, error) {
	created, err := a.provider.Register(ctx, user, password)
	if err != nil {
		a.log.Warnf(ctx, "registration failed user=%s err=%v", user.Username, err)
		return nil, err
	}
	a.log.Infof(ctx, "registered user=%s", user.Username)
	return created, nil
}

func (a *Auth) Logout(ctx context.Context) {
	if err := a.tokens.ClearToken(); err != nil {
		a.log.Errorf(ctx, "token clear failed err=%v", err)
	}
	a.log.Infof(ctx, "logged out")
}
