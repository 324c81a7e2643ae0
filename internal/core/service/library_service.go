package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// LibraryService is the borrow/return facade sitting above the loan ledger.
// The rule that a user cannot hold two simultaneously active loans for the
// same book lives here, not in the ledger: the ledger records whatever it is
// handed, the facade rejects the duplicate before it gets there.
type LibraryService struct {
	auth  ports.AuthService
	loans ports.LoanService
	log   zerolog.Logger
}

func NewLibraryService(auth ports.AuthService, loans ports.LoanService, log zerolog.Logger) *LibraryService {
	return &LibraryService{auth: auth, loans: loans, log: log}
}

// Borrow creates a loan of the book for the logged-in user. It fails with
// ErrNoSession when logged out and ErrLoanExists when the user already holds
// an active loan for the same book.
func (s *LibraryService) Borrow(ctx context.Context, bookID string) (*domain.Loan, error) {
	user, ok := s.auth.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNoSession
	}

	for _, l := range s.loans.UserLoans(ctx, user.ID) {
		if l.BookID == bookID && l.Status == domain.LoanActive {
			return nil, domain.ErrLoanExists
		}
	}

	loan, ok := s.loans.AddLoan(ctx, bookID, user.ID)
	if !ok {
		return nil, domain.ErrNoSession
	}
	return loan, nil
}

// Return transitions the loan to returned, stamping the return date with
// the current time.
func (s *LibraryService) Return(ctx context.Context, loanID string) error {
	now := time.Now().UTC()
	if !s.loans.UpdateLoanStatus(ctx, loanID, domain.LoanReturned, &now) {
		return domain.ErrLoanNotFound
	}
	s.log.Info().Str("loan_id", loanID).Msg("loan returned")
	return nil
}
