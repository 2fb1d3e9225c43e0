package api

import (
	"github.com/LerianStudio/mini-ledger/internal/ledger"
	libHTTP "github.com/LerianStudio/mini-ledger/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// Handler carries the ledger service into the HTTP handlers.
type Handler struct {
	service *ledger.Service
}

// NewHandler creates an HTTP handler set over the given ledger service.
func NewHandler(service *ledger.Service) *Handler {
	return &Handler{service: service}
}

// CreateUser handles POST /v1/users.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var input CreateUserInput
	if err := libHTTP.ParseAndValidate(c, &input); err != nil {
		return libHTTP.BadRequestError(c, "invalid_request", err.Error())
	}

	user, err := h.service.CreateUser(c.UserContext(), input.ID, input.Name)
	if err != nil {
		return renderDomainError(c, err)
	}

	return libHTTP.Created(c, user)
}

// ApplyTransaction handles POST /v1/users/:user_id/transactions.
func (h *Handler) ApplyTransaction(c *fiber.Ctx) error {
	userID, err := userIDFromPath(c)
	if err != nil {
		return libHTTP.BadRequestError(c, "invalid_path_parameter", err.Error())
	}

	var input TransactionInput
	if err := libHTTP.ParseAndValidate(c, &input); err != nil {
		return libHTTP.BadRequestError(c, "invalid_request", err.Error())
	}

	user, err := h.service.ApplyTransaction(c.UserContext(), userID, ledger.TransactionType(input.Type), input.Amount)
	if err != nil {
		return renderDomainError(c, err)
	}

	return libHTTP.OK(c, user)
}

// IssueLoan handles POST /v1/users/:user_id/loans.
func (h *Handler) IssueLoan(c *fiber.Ctx) error {
	userID, err := userIDFromPath(c)
	if err != nil {
		return libHTTP.BadRequestError(c, "invalid_path_parameter", err.Error())
	}

	var input LoanInput
	if err := libHTTP.ParseAndValidate(c, &input); err != nil {
		return libHTTP.BadRequestError(c, "invalid_request", err.Error())
	}

	loan, err := h.service.IssueLoan(c.UserContext(), userID, input.Amount)
	if err != nil {
		return renderDomainError(c, err)
	}

	return libHTTP.Created(c, loan)
}

// GetBalance handles GET /v1/users/:user_id/balance.
func (h *Handler) GetBalance(c *fiber.Ctx) error {
	userID, err := userIDFromPath(c)
	if err != nil {
		return libHTTP.BadRequestError(c, "invalid_path_parameter", err.Error())
	}

	statement, err := h.service.BalanceStatement(c.UserContext(), userID)
	if err != nil {
		return renderDomainError(c, err)
	}

	return libHTTP.OK(c, statement)
}

// ListUsers handles GET /v1/users.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	return libHTTP.OK(c, h.service.ListUsers(c.UserContext()))
}

// ListLoans handles GET /v1/loans.
func (h *Handler) ListLoans(c *fiber.Ctx) error {
	return libHTTP.OK(c, h.service.ListLoans(c.UserContext()))
}

// renderDomainError maps ledger domain errors onto HTTP status codes.
func renderDomainError(c *fiber.Ctx, err error) error {
	code, ok := ledger.CodeOf(err)
	if !ok {
		return libHTTP.InternalServerError(c)
	}

	switch code {
	case ledger.ErrorUserNotFound:
		return libHTTP.NotFoundError(c, "user_not_found", err.Error())
	case ledger.ErrorUserAlreadyExists:
		return libHTTP.ConflictError(c, "user_already_exists", err.Error())
	case ledger.ErrorLoanAlreadyExists:
		return libHTTP.ConflictError(c, "loan_already_exists", err.Error())
	case ledger.ErrorInsufficientFunds:
		return libHTTP.UnprocessableEntityError(c, "insufficient_funds", err.Error())
	case ledger.ErrorInvalidAmount, ledger.ErrorInvalidInput:
		return libHTTP.BadRequestError(c, "invalid_request", err.Error())
	default:
		return libHTTP.InternalServerError(c)
	}
}
