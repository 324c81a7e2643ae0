package ports

import (
	"context"
	"time"

	"github.com/openshelf/library-system/internal/core/domain"
)

// ChangePasswordResult carries the outcome of a password change, with a
// message intended for direct user-facing display.
type ChangePasswordResult struct {
	Success bool
	Message string
}

// AuthService maintains the user directory and the simulated session.
type AuthService interface {
	// Register appends a new user record. It reports false when the
	// username is already taken, leaving the directory unchanged.
	Register(ctx context.Context, username, password string) bool
	// Login matches on exact username+password equality. On success it
	// issues a session token and persists the current-user snapshot.
	Login(ctx context.Context, username, password string) (*domain.User, bool)
	// CurrentUser reports the logged-in user. Without a session token the
	// caller is treated as logged out even if a stale snapshot exists.
	CurrentUser(ctx context.Context) (*domain.User, bool)
	// Logout clears the snapshot and the token unconditionally.
	Logout(ctx context.Context)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) ChangePasswordResult
}

// LoanService is the loan ledger. It does not deduplicate simultaneous
// active loans for the same (book, user) pair; that check lives in the
// borrow facade above it.
type LoanService interface {
	// AddLoan creates an active loan due LoanPeriodDays from now. It
	// requires a session token; without one it creates nothing and reports
	// false.
	AddLoan(ctx context.Context, bookID, userID string) (*domain.Loan, bool)
	// UpdateLoanStatus overwrites the loan's status and, when non-nil, its
	// return date, preserving all other fields. Unknown ids report false.
	UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, returnDate *time.Time) bool
	UserLoans(ctx context.Context, userID string) []domain.Loan
}

// WishlistService maintains the per-installation wishlist collection.
type WishlistService interface {
	// Add stores the book unless it is already wishlisted. It requires a
	// session token.
	Add(ctx context.Context, book domain.Book) error
	Remove(ctx context.Context, bookID string)
	List(ctx context.Context) []domain.Book
}
