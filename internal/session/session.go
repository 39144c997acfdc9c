// Package session stores the bearer token issued by the backend on login.
// The token is opaque to the client: it is saved on login, attached to every
// authenticated request, and cleared on logout or when the backend rejects
// it with a 401.
package session

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/99designs/keyring"
)

const (
	keychainService = "verdex"
	tokenKey        = "verdex.token"
)

// Store wraps OS keychain access for the session token.
type Store struct {
	ring keyring.Keyring
}

// Open returns a store backed by the OS keychain.
func Open() *Store {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		ring, _ = keyring.Open(keyring.Config{
			ServiceName:     keychainService,
			AllowedBackends: []keyring.BackendType{keyring.FileBackend},
		})
	}

	return &Store{ring: ring}
}

// NewWithKeyring returns a store over an explicit keyring (tests use
// keyring.NewArrayKeyring).
func NewWithKeyring(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

// Save persists the bearer token.
func (s *Store) Save(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("refusing to save empty token")
	}
	if s.ring == nil {
		return fmt.Errorf("keychain not available")
	}
	err := s.ring.Set(keyring.Item{
		Key:  tokenKey,
		Data: []byte(token),
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or ("", false) when no session
// exists.
func (s *Store) Token() (string, bool) {
	if s.ring == nil {
		return "", false
	}
	item, err := s.ring.Get(tokenKey)
	if err != nil || len(item.Data) == 0 {
		return "", false
	}
	return string(item.Data), true
}

// Active reports whether a session token is stored.
func (s *Store) Active() bool {
	_, ok := s.Token()
	return ok
}

// Clear removes the stored token. Clearing an absent session is a no-op,
// so the 401 path may call this redundantly.
func (s *Store) Clear() error {
	if s.ring == nil {
		return nil
	}
	err := s.ring.Remove(tokenKey)
	if err == nil || err == keyring.ErrKeyNotFound {
		return nil
	}
	// Some backends report missing keys with their own error text.
	if strings.Contains(err.Error(), "not found") {
		return nil
	}
	return err
}
