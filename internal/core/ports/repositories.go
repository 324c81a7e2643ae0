package ports

import (
	"context"

	"github.com/openshelf/library-system/internal/core/domain"
)

// UserRepository persists the registered-users collection. Collections are
// read and written whole; read-modify-write sequences are not atomic across
// suspension points and the last write wins (accepted limitation).
type UserRepository interface {
	All(ctx context.Context) []domain.User
	SaveAll(ctx context.Context, users []domain.User)
}

// SessionStore persists the current-user snapshot. The snapshot alone does
// not prove a live session; the token is the source of truth.
type SessionStore interface {
	CurrentUser(ctx context.Context) (domain.User, bool)
	SetCurrentUser(ctx context.Context, u domain.User)
	ClearCurrentUser(ctx context.Context)
}

// TokenStore persists the opaque session token under exactly one key.
type TokenStore interface {
	Token(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string)
	RemoveToken(ctx context.Context)
	// AuthHeader returns "Bearer <token>" for simulated backend requests,
	// or the empty string when logged out.
	AuthHeader(ctx context.Context) string
}

// LoanRepository persists the loan ledger collection.
type LoanRepository interface {
	All(ctx context.Context) []domain.Loan
	SaveAll(ctx context.Context, loans []domain.Loan)
}

// WishlistRepository persists the wishlist collection.
type WishlistRepository interface {
	All(ctx context.Context) []domain.Book
	SaveAll(ctx context.Context, books []domain.Book)
}
