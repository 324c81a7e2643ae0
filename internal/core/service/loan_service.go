package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
	"github.com/openshelf/library-system/internal/infrastructure/metrics"
)

// LoanService is the loan ledger. Creation is gated on an active session
// token; beyond that the ledger applies no business rules, in particular no
// deduplication of active loans (see LibraryService).
type LoanService struct {
	loans  ports.LoanRepository
	tokens ports.TokenStore
	log    zerolog.Logger
}

func NewLoanService(loans ports.LoanRepository, tokens ports.TokenStore, log zerolog.Logger) *LoanService {
	return &LoanService{loans: loans, tokens: tokens, log: log}
}

var _ ports.LoanService = (*LoanService)(nil)

// AddLoan appends a new active loan due LoanPeriodDays from now. Without a
// session token nothing is created and the rejection is logged as an
// authorization failure.
func (s *LoanService) AddLoan(ctx context.Context, bookID, userID string) (*domain.Loan, bool) {
	if _, ok := s.tokens.Token(ctx); !ok {
		metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
		s.log.Error().Str("book_id", bookID).Str("user_id", userID).Msg("loan rejected: no session token")
		return nil, false
	}

	now := time.Now().UTC()
	loan := domain.Loan{
		ID:       fmt.Sprintf("loan-%d", now.UnixMilli()),
		BookID:   bookID,
		UserID:   userID,
		LoanDate: now,
		DueDate:  now.AddDate(0, 0, domain.LoanPeriodDays),
		Status:   domain.LoanActive,
	}

	s.loans.SaveAll(ctx, append(s.loans.All(ctx), loan))
	metrics.LoansCreatedTotal.Inc()
	s.log.Info().Str("loan_id", loan.ID).Str("book_id", bookID).Str("user_id", userID).Msg("loan created")
	return &loan, true
}

// UpdateLoanStatus overwrites the loan's status and, when returnDate is
// non-nil, its return date. All other fields are preserved. Unknown loan ids
// report false and leave the ledger unchanged.
func (s *LoanService) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, returnDate *time.Time) bool {
	loans := s.loans.All(ctx)
	for i := range loans {
		if loans[i].ID != loanID {
			continue
		}
		loans[i].Status = status
		if returnDate != nil {
			loans[i].ReturnDate = returnDate
		}
		s.loans.SaveAll(ctx, loans)
		return true
	}
	return false
}

// UserLoans returns every loan held by the user, in ledger order.
func (s *LoanService) UserLoans(ctx context.Context, userID string) []domain.Loan {
	var out []domain.Loan
	for _, l := range s.loans.All(ctx) {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out
}
