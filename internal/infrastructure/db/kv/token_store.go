package kv

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/ports"
)

// TokenStore persists the opaque session token under exactly one key. The
// token is serialized like every other stored value, as JSON text.
type TokenStore struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewTokenStore(store ports.KeyValueStore, log zerolog.Logger) *TokenStore {
	return &TokenStore{store: store, log: log}
}

func (s *TokenStore) Token(ctx context.Context) (string, bool) {
	token, ok := getJSON[string](ctx, s.store, tokenKey, s.log)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *TokenStore) SetToken(ctx context.Context, token string) {
	setJSON(ctx, s.store, tokenKey, token, s.log)
}

func (s *TokenStore) RemoveToken(ctx context.Context) {
	s.store.Remove(ctx, tokenKey)
}

// AuthHeader returns the Authorization header value for simulated backend
// requests, or the empty string when no session is active.
func (s *TokenStore) AuthHeader(ctx context.Context) string {
	token, ok := s.Token(ctx)
	if !ok {
		return ""
	}
	return "Bearer " + token
}
