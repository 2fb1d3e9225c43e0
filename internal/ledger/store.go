package ledger

import "sort"

// Store holds the authoritative in-memory state for users and loans, keyed by
// user id. It is pure key-value access: no validation happens here.
//
// Store is not safe for concurrent use on its own. The Service serializes all
// access behind a single mutex, which is the locking boundary for the whole
// ledger.
type Store struct {
	users map[int64]User
	loans map[int64]Loan
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users: make(map[int64]User),
		loans: make(map[int64]Loan),
	}
}

// GetUser returns the user with the given id, if present.
func (s *Store) GetUser(id int64) (User, bool) {
	user, ok := s.users[id]
	return user, ok
}

// PutUser stores the user, replacing any existing entry with the same id.
func (s *Store) PutUser(user User) {
	s.users[user.ID] = user
}

// GetLoan returns the loan owned by the given user, if present.
func (s *Store) GetLoan(userID int64) (Loan, bool) {
	loan, ok := s.loans[userID]
	return loan, ok
}

// PutLoan stores the loan, replacing any existing entry for the same user.
func (s *Store) PutLoan(loan Loan) {
	s.loans[loan.UserID] = loan
}

// ListUsers returns all users ordered by ascending id.
func (s *Store) ListUsers() []User {
	users := make([]User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users
}

// ListLoans returns all loans ordered by ascending owner id.
func (s *Store) ListLoans() []Loan {
	loans := make([]Loan, 0, len(s.loans))
	for _, loan := range s.loans {
		loans = append(loans, loan)
	}

	sort.Slice(loans, func(i, j int) bool { return loans[i].UserID < loans[j].UserID })

	return loans
}
