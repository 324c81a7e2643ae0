package kv

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// LoanRepository stores the loan ledger under a single key. The ledger is
// read and rewritten whole; two overlapping read-modify-write sequences can
// lose an update (last write wins).
type LoanRepository struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewLoanRepository(store ports.KeyValueStore, log zerolog.Logger) *LoanRepository {
	return &LoanRepository{store: store, log: log}
}

func (r *LoanRepository) All(ctx context.Context) []domain.Loan {
	loans, ok := getJSON[[]domain.Loan](ctx, r.store, loansKey, r.log)
	if !ok {
		return nil
	}
	return loans
}

func (r *LoanRepository) SaveAll(ctx context.Context, loans []domain.Loan) {
	setJSON(ctx, r.store, loansKey, loans, r.log)
}
