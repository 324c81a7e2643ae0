package kv

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// SessionStore persists the current-user snapshot. Presence of a snapshot is
// not proof of a session; the auth service always checks the token first.
type SessionStore struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewSessionStore(store ports.KeyValueStore, log zerolog.Logger) *SessionStore {
	return &SessionStore{store: store, log: log}
}

func (s *SessionStore) CurrentUser(ctx context.Context) (domain.User, bool) {
	return getJSON[domain.User](ctx, s.store, currentUserKey, s.log)
}

func (s *SessionStore) SetCurrentUser(ctx context.Context, u domain.User) {
	setJSON(ctx, s.store, currentUserKey, u, s.log)
}

func (s *SessionStore) ClearCurrentUser(ctx context.Context) {
	s.store.Remove(ctx, currentUserKey)
}
