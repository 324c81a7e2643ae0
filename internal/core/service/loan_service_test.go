package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/openshelf/library-system/internal/core/domain"
)

func newLoanFixture(loggedIn bool) (*LoanService, *stubLoanRepo, *stubTokenStore) {
	loans := &stubLoanRepo{}
	tokens := &stubTokenStore{}
	if loggedIn {
		tokens.SetToken(context.Background(), "YW5hOnNlY3JldA==")
	}
	return NewLoanService(loans, tokens, discardLogger), loans, tokens
}

// ---------------------------------------------------------------------------
// AddLoan
// ---------------------------------------------------------------------------

func TestLoanService_AddLoan_NoSession(t *testing.T) {
	svc, repo, _ := newLoanFixture(false)

	loan, ok := svc.AddLoan(context.Background(), "/works/OL1W", "user-1")
	if ok || loan != nil {
		t.Fatal("expected no loan without a session token")
	}
	if len(repo.loans) != 0 {
		t.Error("expected ledger unchanged")
	}
}

func TestLoanService_AddLoan_Success(t *testing.T) {
	svc, repo, _ := newLoanFixture(true)

	loan, ok := svc.AddLoan(context.Background(), "/works/OL1W", "user-1")
	if !ok {
		t.Fatal("expected loan creation to succeed")
	}
	if !strings.HasPrefix(loan.ID, "loan-") {
		t.Errorf("expected timestamp-derived id, got %q", loan.ID)
	}
	if loan.Status != domain.LoanActive {
		t.Errorf("expected status %q, got %q", domain.LoanActive, loan.Status)
	}
	if loan.ReturnDate != nil {
		t.Error("expected no return date on a fresh loan")
	}
	if len(repo.loans) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(repo.loans))
	}
}

func TestLoanService_AddLoan_DueDateIsLoanDatePlus14Days(t *testing.T) {
	svc, _, _ := newLoanFixture(true)

	loan, _ := svc.AddLoan(context.Background(), "/works/OL1W", "user-1")

	want := loan.LoanDate.AddDate(0, 0, 14)
	if !loan.DueDate.Equal(want) {
		t.Errorf("expected due date %v, got %v", want, loan.DueDate)
	}
}

func TestLoanPeriod_CrossesYearBoundary(t *testing.T) {
	loanDate := time.Date(2023, time.December, 20, 12, 0, 0, 0, time.UTC)
	due := loanDate.AddDate(0, 0, domain.LoanPeriodDays)

	want := time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Errorf("expected %v, got %v", want, due)
	}
}

// ---------------------------------------------------------------------------
// UpdateLoanStatus
// ---------------------------------------------------------------------------

func TestLoanService_UpdateLoanStatus_UnknownID(t *testing.T) {
	svc, repo, _ := newLoanFixture(true)
	ctx := context.Background()

	svc.AddLoan(ctx, "/works/OL1W", "user-1")
	before := repo.All(ctx)

	if svc.UpdateLoanStatus(ctx, "loan-missing", domain.LoanReturned, nil) {
		t.Fatal("expected false for an unknown loan id")
	}

	after := repo.All(ctx)
	if len(after) != len(before) || after[0] != before[0] {
		t.Error("expected ledger unchanged")
	}
}

func TestLoanService_UpdateLoanStatus_PreservesOtherFields(t *testing.T) {
	svc, repo, _ := newLoanFixture(true)
	ctx := context.Background()

	created, _ := svc.AddLoan(ctx, "/works/OL1W", "user-1")

	returned := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	if !svc.UpdateLoanStatus(ctx, created.ID, domain.LoanReturned, &returned) {
		t.Fatal("expected update to succeed")
	}

	got := repo.loans[0]
	if got.Status != domain.LoanReturned {
		t.Errorf("expected status returned, got %q", got.Status)
	}
	if got.ReturnDate == nil || !got.ReturnDate.Equal(returned) {
		t.Errorf("expected return date %v, got %v", returned, got.ReturnDate)
	}
	if got.BookID != created.BookID || got.UserID != created.UserID {
		t.Error("expected book and user ids preserved")
	}
	if !got.LoanDate.Equal(created.LoanDate) || !got.DueDate.Equal(created.DueDate) {
		t.Error("expected loan and due dates preserved")
	}
}

func TestLoanService_UpdateLoanStatus_NilReturnDateKeepsExisting(t *testing.T) {
	svc, repo, _ := newLoanFixture(true)
	ctx := context.Background()

	created, _ := svc.AddLoan(ctx, "/works/OL1W", "user-1")
	returned := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	svc.UpdateLoanStatus(ctx, created.ID, domain.LoanReturned, &returned)

	// Flipping status again without a date must keep the recorded one.
	svc.UpdateLoanStatus(ctx, created.ID, domain.LoanOverdue, nil)

	got := repo.loans[0]
	if got.Status != domain.LoanOverdue {
		t.Errorf("expected status overdue, got %q", got.Status)
	}
	if got.ReturnDate == nil || !got.ReturnDate.Equal(returned) {
		t.Error("expected existing return date preserved")
	}
}

// ---------------------------------------------------------------------------
// UserLoans
// ---------------------------------------------------------------------------

func TestLoanService_UserLoans_FiltersByUser(t *testing.T) {
	svc, repo, _ := newLoanFixture(true)
	ctx := context.Background()

	repo.SaveAll(ctx, []domain.Loan{
		{ID: "loan-1", BookID: "/works/OL1W", UserID: "user-1", Status: domain.LoanActive},
		{ID: "loan-2", BookID: "/works/OL2W", UserID: "user-2", Status: domain.LoanActive},
		{ID: "loan-3", BookID: "/works/OL3W", UserID: "user-1", Status: domain.LoanReturned},
	})

	got := svc.UserLoans(ctx, "user-1")
	if len(got) != 2 {
		t.Fatalf("expected 2 loans, got %d", len(got))
	}
	if got[0].ID != "loan-1" || got[1].ID != "loan-3" {
		t.Error("expected ledger order preserved")
	}
}
