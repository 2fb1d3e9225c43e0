package api

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CreateUserInput is the request body for creating a user.
//
// Balance is accepted for wire compatibility with existing clients but is
// ignored: every user starts at exactly zero.
type CreateUserInput struct {
	ID      int64           `json:"id"      validate:"required,gte=1"`
	Name    string          `json:"name"    validate:"required"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionInput is the request body for applying a balance transaction.
//
// Amount positivity is deliberately not validated here: the ledger service is
// the single validation path for amounts and reports InvalidAmount itself.
type TransactionInput struct {
	Type   string          `json:"type"   validate:"required,oneof=debit credit"`
	Amount decimal.Decimal `json:"amount"`
}

// LoanInput is the request body for issuing a loan.
type LoanInput struct {
	Amount decimal.Decimal `json:"amount" validate:"positive_decimal"`
}

// userIDFromPath extracts and validates the user_id path parameter.
func userIDFromPath(c *fiber.Ctx) (int64, error) {
	raw := c.Params("user_id")

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("user_id must be an integer, got %q", raw)
	}

	if userID < 1 {
		return 0, fmt.Errorf("user_id must be greater than or equal to 1, got %d", userID)
	}

	return userID, nil
}
