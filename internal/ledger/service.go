package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/LerianStudio/mini-ledger/pkg/log"
	"github.com/shopspring/decimal"
)

// Service implements the ledger operations over a Store.
//
// A single mutex serializes every operation, so each operation is atomic with
// respect to any other concurrent operation. A global lock is a deliberate
// choice at this scale; it also keeps the credit-then-record step of IssueLoan
// inside one critical section.
type Service struct {
	mu     sync.Mutex
	store  *Store
	logger log.Logger
}

// NewService creates a ledger service over the given store.
// If logger is nil, a no-op logger is used.
func NewService(store *Store, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Service{store: store, logger: logger}
}

// CreateUser stores a new user with a zero balance.
//
// Any balance supplied by the caller is ignored: every user starts at exactly
// zero. Fails with ErrorUserAlreadyExists if the id is already taken.
func (s *Service) CreateUser(ctx context.Context, id int64, name string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.GetUser(id); ok {
		return User{}, NewDomainError(ErrorUserAlreadyExists, "id", fmt.Sprintf("user with id %d already exists", id))
	}

	user := User{ID: id, Name: name, Balance: decimal.Zero}
	s.store.PutUser(user)

	s.logger.Log(ctx, log.LevelInfo, "user created",
		log.Int64("user_id", user.ID),
		log.String("name", user.Name),
	)

	return user, nil
}

// ApplyTransaction applies a debit or credit to the user's balance and returns
// the updated user.
//
// This is the single point of balance mutation: every flow that changes a
// balance goes through here, including loan credits.
func (s *Service) ApplyTransaction(ctx context.Context, userID int64, transactionType TransactionType, amount decimal.Decimal) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyTransactionLocked(ctx, userID, transactionType, amount)
}

// applyTransactionLocked is the body of ApplyTransaction without lock
// acquisition. Callers must hold s.mu.
func (s *Service) applyTransactionLocked(ctx context.Context, userID int64, transactionType TransactionType, amount decimal.Decimal) (User, error) {
	user, ok := s.store.GetUser(userID)
	if !ok {
		return User{}, NewDomainError(ErrorUserNotFound, "user_id", fmt.Sprintf("user with id %d not found", userID))
	}

	if !amount.IsPositive() {
		return User{}, NewDomainError(ErrorInvalidAmount, "amount", "transaction amount must be positive")
	}

	switch transactionType {
	case TransactionDebit:
		if user.Balance.LessThan(amount) {
			return User{}, NewDomainError(ErrorInsufficientFunds, "amount", "insufficient funds for debit")
		}

		user.Balance = user.Balance.Sub(amount)
	case TransactionCredit:
		user.Balance = user.Balance.Add(amount)
	default:
		return User{}, NewDomainError(ErrorInvalidInput, "type", fmt.Sprintf("unknown transaction type %q", transactionType))
	}

	s.store.PutUser(user)

	s.logger.Log(ctx, log.LevelInfo, "transaction applied",
		log.Int64("user_id", user.ID),
		log.String("type", string(transactionType)),
		log.String("amount", amount.String()),
		log.String("balance", user.Balance.String()),
	)

	return user, nil
}

// IssueLoan credits the loan principal to the user's balance and records the
// loan, as a single all-or-nothing unit.
//
// The credit goes through the same validation path as any other transaction;
// if it fails, the failure is propagated and no loan is recorded. The loan is
// stored only after the credit succeeds.
func (s *Service) IssueLoan(ctx context.Context, userID int64, amount decimal.Decimal) (Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.GetUser(userID); !ok {
		return Loan{}, NewDomainError(ErrorUserNotFound, "user_id", fmt.Sprintf("user with id %d not found", userID))
	}

	if _, ok := s.store.GetLoan(userID); ok {
		return Loan{}, NewDomainError(ErrorLoanAlreadyExists, "user_id", fmt.Sprintf("user %d already has an active loan", userID))
	}

	if _, err := s.applyTransactionLocked(ctx, userID, TransactionCredit, amount); err != nil {
		return Loan{}, err
	}

	loan := Loan{UserID: userID, Amount: amount}
	s.store.PutLoan(loan)

	s.logger.Log(ctx, log.LevelInfo, "loan issued",
		log.Int64("user_id", loan.UserID),
		log.String("amount", loan.Amount.String()),
	)

	return loan, nil
}

// BalanceStatement returns the composite balance view for the user.
//
// A missing loan is not an error: LoanDetails stays nil and the statement is
// returned normally.
func (s *Service) BalanceStatement(_ context.Context, userID int64) (BalanceStatement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.GetUser(userID)
	if !ok {
		return BalanceStatement{}, NewDomainError(ErrorUserNotFound, "user_id", fmt.Sprintf("user with id %d not found", userID))
	}

	statement := BalanceStatement{
		UserID:         user.ID,
		Name:           user.Name,
		CurrentBalance: user.Balance,
	}

	if loan, ok := s.store.GetLoan(userID); ok {
		statement.LoanDetails = &loan
	}

	return statement, nil
}

// ListUsers returns all users ordered by ascending id.
func (s *Service) ListUsers(_ context.Context) []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ListUsers()
}

// ListLoans returns all loans ordered by ascending owner id.
func (s *Service) ListLoans(_ context.Context) []Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ListLoans()
}
