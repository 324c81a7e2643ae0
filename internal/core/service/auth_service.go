package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
	"github.com/openshelf/library-system/internal/infrastructure/metrics"
)

// AuthService maintains the user directory and the simulated session.
//
// Passwords are kept in plain text and matched by exact equality: the
// directory simulates a backend for a client-side application and is not a
// security boundary. The session token is a reversible encoding of the
// credentials, standing in for a bearer token.
type AuthService struct {
	users    ports.UserRepository
	session  ports.SessionStore
	tokens   ports.TokenStore
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, session ports.SessionStore, tokens ports.TokenStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		session:  session,
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
	}
}

var _ ports.AuthService = (*AuthService)(nil)

// Register appends a new user record with a timestamp-derived identifier.
// It reports false when the username is already taken, leaving the
// directory unchanged.
func (s *AuthService) Register(ctx context.Context, username, password string) bool {
	users := s.users.All(ctx)
	for _, u := range users {
		if u.Username == username {
			metrics.AuthFailuresTotal.WithLabelValues("duplicate_username").Inc()
			s.log.Info().Str("username", username).Msg("registration rejected: username taken")
			return false
		}
	}

	user := domain.User{
		ID:       fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Username: username,
		Password: password,
	}
	s.users.SaveAll(ctx, append(users, user))
	s.log.Info().Str("username", username).Str("user_id", user.ID).Msg("user registered")
	return true
}

// Login matches on exact username+password equality. On success it derives
// the session token, persists it, and stores the current-user snapshot; on
// failure nothing changes.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, bool) {
	for _, u := range s.users.All(ctx) {
		if u.Username == username && u.Password == password {
			s.tokens.SetToken(ctx, encodeToken(username, password))
			s.session.SetCurrentUser(ctx, u)
			s.log.Info().Str("username", username).Msg("login succeeded")
			return &u, true
		}
	}
	metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
	s.log.Info().Str("username", username).Msg("login rejected")
	return nil, false
}

// CurrentUser returns the logged-in user. The token is the source of truth:
// without one the caller is logged out, even if a stale snapshot is still in
// storage.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, bool) {
	if _, ok := s.tokens.Token(ctx); !ok {
		return nil, false
	}
	u, ok := s.session.CurrentUser(ctx)
	if !ok {
		return nil, false
	}
	return &u, true
}

// Logout clears the snapshot and the token unconditionally.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.ClearCurrentUser(ctx)
	s.tokens.RemoveToken(ctx)
}

type newPasswordInput struct {
	NewPassword string `validate:"required,min=6"`
}

// ChangePassword rewrites the stored credential record for the logged-in
// user. Failures carry a message intended for direct display.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) ports.ChangePasswordResult {
	current, ok := s.CurrentUser(ctx)
	if !ok {
		return ports.ChangePasswordResult{Success: false, Message: "you must be logged in to change your password"}
	}

	users := s.users.All(ctx)
	idx := -1
	for i, u := range users {
		if u.Username == current.Username {
			idx = i
			break
		}
	}
	if idx < 0 || users[idx].Password != currentPassword {
		return ports.ChangePasswordResult{Success: false, Message: "current password is incorrect"}
	}

	if err := s.validate.Struct(newPasswordInput{NewPassword: newPassword}); err != nil {
		return ports.ChangePasswordResult{Success: false, Message: "new password must be at least 6 characters"}
	}

	users[idx].Password = newPassword
	s.users.SaveAll(ctx, users)
	// Snapshot is refreshed with the password stripped.
	s.session.SetCurrentUser(ctx, users[idx].Sanitized())
	s.log.Info().Str("username", current.Username).Msg("password changed")
	return ports.ChangePasswordResult{Success: true, Message: "password updated"}
}

// encodeToken derives the opaque session token from the credentials. It is
// deliberately reversible: it simulates a bearer credential, nothing more.
func encodeToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
