package auth

import (
	"sync"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
)

const keyToken = "shop-auth-token"

var _ ports.TokenStore = (*PersistentTokenStore)(nil)

// PersistentTokenStore keeps the access token in the key/value store
// so the session survives restarts.
type PersistentTokenStore struct {
	kv ports.KVStore

	mu     sync.Mutex
	token  string
	loaded bool
}

func NewPersistentTokenStore(kv ports.KVStore) *PersistentTokenStore {
	return &PersistentTokenStore{kv: kv}
}

func (s *PersistentTokenStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		// A blob that fails to decode counts as no session.
		_, _ = s.kv.Load(keyToken, &s.token)
		s.loaded = true
	}
	return s.token, s.token != ""
}

func (s *PersistentTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.loaded = true
	return s.kv.Save(keyToken, token)
}

func (s *PersistentTokenStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.loaded = true
	return s.kv.Delete(keyToken)
}
