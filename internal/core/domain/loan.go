package domain

import (
	"errors"
	"time"
)

// LoanStatus represents the lifecycle state of a loan.
type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanReturned LoanStatus = "returned"
	LoanOverdue  LoanStatus = "overdue"
)

// LoanPeriodDays is the fixed loan term applied at creation time.
const LoanPeriodDays = 14

var ErrLoanNotFound = errors.New("loan not found")
var ErrLoanExists = errors.New("book already on active loan")

// Loan is a single entry in the loan ledger.
type Loan struct {
	ID         string     `json:"id" bson:"id"`
	BookID     string     `json:"book_id" bson:"book_id"`
	UserID     string     `json:"user_id" bson:"user_id"`
	LoanDate   time.Time  `json:"loan_date" bson:"loan_date"`
	DueDate    time.Time  `json:"due_date" bson:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty" bson:"return_date,omitempty"`
	Status     LoanStatus `json:"status" bson:"status"`
}
