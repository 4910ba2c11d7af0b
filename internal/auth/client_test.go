package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/kvstore"
)

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if creds.Username != "diego" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": "tok-1",
			"id":          7,
			"username":    "diego",
			"firstName":   "Diego",
			"lastName":    "Perez",
		})
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(domain.User{ID: 7, Username: "diego"})
	})

	mux.HandleFunc("POST /users/add", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			domain.User
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		payload.User.ID = 101
		json.NewEncoder(w).Encode(payload.User)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_ReturnsTokenAndProfile(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL, 2*time.Second)

	token, user, err := c.Login(context.Background(), domain.Credentials{Username: "diego", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("wrong token: %q", token)
	}
	if user == nil || user.ID != 7 || user.FullName() != "Diego Perez" {
		t.Fatalf("wrong profile: %+v", user)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL, 2*time.Second)

	if _, _, err := c.Login(context.Background(), domain.Credentials{Username: "diego", Password: "wrong"}); err == nil {
		t.Fatalf("expected error on bad credentials")
	}
}

func TestMe_SendsBearerToken(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL, 2*time.Second)

	user, err := c.Me(context.Background(), "tok-1")
	if err != nil || user == nil || user.ID != 7 {
		t.Fatalf("unexpected result: user=%+v err=%v", user, err)
	}

	if _, err := c.Me(context.Background(), "stale"); err == nil {
		t.Fatalf("expected error for a rejected token")
	}
}

func TestRegister_CreatesUser(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL, 2*time.Second)

	created, err := c.Register(context.Background(), domain.User{Username: "maria"}, "secret")
	if err != nil || created == nil || created.ID != 101 {
		t.Fatalf("unexpected result: created=%+v err=%v", created, err)
	}
}

func TestTokenStore_PersistsAcrossInstances(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	first := NewPersistentTokenStore(kv)
	if _, ok := first.Token(); ok {
		t.Fatalf("fresh store should have no token")
	}
	if err := first.SetToken("tok-1"); err != nil {
		t.Fatalf("set: %v", err)
	}

	second := NewPersistentTokenStore(kv)
	if got, ok := second.Token(); !ok || got != "tok-1" {
		t.Fatalf("token not persisted: %q ok=%v", got, ok)
	}

	if err := second.ClearToken(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	third := NewPersistentTokenStore(kv)
	if _, ok := third.Token(); ok {
		t.Fatalf("token survived clear")
	}
}
