package ledger

import "github.com/shopspring/decimal"

// TransactionType represents the direction of a balance mutation.
type TransactionType string

const (
	// TransactionDebit decreases a user's available balance.
	TransactionDebit TransactionType = "debit"
	// TransactionCredit increases a user's available balance.
	TransactionCredit TransactionType = "credit"
)

// Valid reports whether the transaction type is a known direction.
func (t TransactionType) Valid() bool {
	return t == TransactionDebit || t == TransactionCredit
}

// User is a ledger account holder.
//
// Balance always starts at zero on creation and is mutated exclusively through
// Service.ApplyTransaction. Users are never deleted.
type User struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Loan is an outstanding loan principal recorded against a user.
//
// A loan is keyed by the owning user's id: at most one loan exists per user.
// Loans are never mutated or deleted (there is no repayment path).
type Loan struct {
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

// BalanceStatement is the composite balance view for a single user.
//
// LoanDetails is nil when the user has no outstanding loan; that is a valid
// outcome, not an error.
type BalanceStatement struct {
	UserID         int64           `json:"user_id"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	LoanDetails    *Loan           `json:"loan_details,omitempty"`
}
