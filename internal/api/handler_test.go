package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LerianStudio/mini-ledger/internal/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	service := ledger.NewService(ledger.NewStore(), nil)

	return NewApp(service, nil)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, resp.Body.Close()) })

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func createUser(t *testing.T, app *fiber.App, id int64, name string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/v1/users", fiber.Map{"id": id, "name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// ---------------------------------------------------------------------------
// POST /v1/users
// ---------------------------------------------------------------------------

func TestCreateUserEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/v1/users", fiber.Map{"id": 1, "name": "Alice", "balance": 999})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := decodeBody[ledger.User](t, resp)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Alice", user.Name)
	// The supplied balance is ignored; users always start at zero.
	assert.True(t, user.Balance.IsZero())
}

func TestCreateUserEndpointDuplicate(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createUser(t, app, 1, "Alice")

	resp := doJSON(t, app, http.MethodPost, "/v1/users", fiber.Map{"id": 1, "name": "Mallory"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateUserEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body fiber.Map
	}{
		{name: "missing id", body: fiber.Map{"name": "Alice"}},
		{name: "missing name", body: fiber.Map{"id": 1}},
		{name: "zero id", body: fiber.Map{"id": 0, "name": "Alice"}},
		{name: "negative id", body: fiber.Map{"id": -3, "name": "Alice"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp(t)

			resp := doJSON(t, app, http.MethodPost, "/v1/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

// ---------------------------------------------------------------------------
// POST /v1/users/:user_id/transactions
// ---------------------------------------------------------------------------

func TestTransactionEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createUser(t, app, 1, "Alice")

	resp := doJSON(t, app, http.MethodPost, "/v1/users/1/transactions", fiber.Map{"type": "credit", "amount": 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := decodeBody[ledger.User](t, resp)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(100)))

	resp = doJSON(t, app, http.MethodPost, "/v1/users/1/transactions", fiber.Map{"type": "debit", "amount": 30})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user = decodeBody[ledger.User](t, resp)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(70)))
}

func TestTransactionEndpointFailures(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           fiber.Map
		expectedStatus int
	}{
		{name: "unknown user", target: "/v1/users/99/transactions", body: fiber.Map{"type": "credit", "amount": 10}, expectedStatus: http.StatusNotFound},
		{name: "non-integer user id", target: "/v1/users/abc/transactions", body: fiber.Map{"type": "credit", "amount": 10}, expectedStatus: http.StatusBadRequest},
		{name: "zero user id", target: "/v1/users/0/transactions", body: fiber.Map{"type": "credit", "amount": 10}, expectedStatus: http.StatusBadRequest},
		{name: "unknown type", target: "/v1/users/1/transactions", body: fiber.Map{"type": "transfer", "amount": 10}, expectedStatus: http.StatusBadRequest},
		{name: "missing type", target: "/v1/users/1/transactions", body: fiber.Map{"amount": 10}, expectedStatus: http.StatusBadRequest},
		{name: "zero amount", target: "/v1/users/1/transactions", body: fiber.Map{"type": "credit", "amount": 0}, expectedStatus: http.StatusBadRequest},
		{name: "negative amount", target: "/v1/users/1/transactions", body: fiber.Map{"type": "debit", "amount": -5}, expectedStatus: http.StatusBadRequest},
		{name: "debit over balance", target: "/v1/users/1/transactions", body: fiber.Map{"type": "debit", "amount": 10}, expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp(t)
			createUser(t, app, 1, "Alice")

			resp := doJSON(t, app, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

// ---------------------------------------------------------------------------
// POST /v1/users/:user_id/loans
// ---------------------------------------------------------------------------

func TestLoanEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createUser(t, app, 1, "Alice")

	resp := doJSON(t, app, http.MethodPost, "/v1/users/1/loans", fiber.Map{"amount": 50})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	loan := decodeBody[ledger.Loan](t, resp)
	assert.Equal(t, int64(1), loan.UserID)
	assert.True(t, loan.Amount.Equal(decimal.NewFromInt(50)))

	// Second loan for the same user is rejected and the balance is unchanged.
	resp = doJSON(t, app, http.MethodPost, "/v1/users/1/loans", fiber.Map{"amount": 10})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/v1/users/1/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	statement := decodeBody[ledger.BalanceStatement](t, resp)
	assert.True(t, statement.CurrentBalance.Equal(decimal.NewFromInt(50)))
}

func TestLoanEndpointFailures(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           fiber.Map
		expectedStatus int
	}{
		{name: "unknown user", target: "/v1/users/99/loans", body: fiber.Map{"amount": 50}, expectedStatus: http.StatusNotFound},
		{name: "zero amount", target: "/v1/users/1/loans", body: fiber.Map{"amount": 0}, expectedStatus: http.StatusBadRequest},
		{name: "negative amount", target: "/v1/users/1/loans", body: fiber.Map{"amount": -50}, expectedStatus: http.StatusBadRequest},
		{name: "missing amount", target: "/v1/users/1/loans", body: fiber.Map{}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp(t)
			createUser(t, app, 1, "Alice")

			resp := doJSON(t, app, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

// ---------------------------------------------------------------------------
// GET /v1/users/:user_id/balance
// ---------------------------------------------------------------------------

func TestBalanceEndpointWithoutLoan(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createUser(t, app, 1, "Alice")

	resp := doJSON(t, app, http.MethodGet, "/v1/users/1/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	statement := decodeBody[ledger.BalanceStatement](t, resp)
	assert.Equal(t, int64(1), statement.UserID)
	assert.Equal(t, "Alice", statement.Name)
	assert.True(t, statement.CurrentBalance.IsZero())
	assert.Nil(t, statement.LoanDetails)
}

func TestBalanceEndpointWithLoan(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createUser(t, app, 1, "Alice")

	resp := doJSON(t, app, http.MethodPost, "/v1/users/1/loans", fiber.Map{"amount": 50})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/v1/users/1/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	statement := decodeBody[ledger.BalanceStatement](t, resp)
	require.NotNil(t, statement.LoanDetails)
	assert.Equal(t, int64(1), statement.LoanDetails.UserID)
	assert.True(t, statement.LoanDetails.Amount.Equal(decimal.NewFromInt(50)))
}

func TestBalanceEndpointUnknownUser(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/v1/users/42/balance", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ---------------------------------------------------------------------------
// List endpoints
// ---------------------------------------------------------------------------

func TestListEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createUser(t, app, 2, "Bob")
	createUser(t, app, 1, "Alice")

	resp := doJSON(t, app, http.MethodPost, "/v1/users/2/loans", fiber.Map{"amount": 15})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := decodeBody[[]ledger.User](t, resp)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)

	resp = doJSON(t, app, http.MethodGet, "/v1/loans", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	loans := decodeBody[[]ledger.Loan](t, resp)
	require.Len(t, loans, 1)
	assert.Equal(t, int64(2), loans[0].UserID)
}

func TestListEndpointsEmpty(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]ledger.User](t, resp))

	resp = doJSON(t, app, http.MethodGet, "/v1/loans", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]ledger.Loan](t, resp))
}

// ---------------------------------------------------------------------------
// Ambient endpoints
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "available", body["status"])
}

func TestWelcomeEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "mini-ledger", body["service"])
	assert.NotEmpty(t, body["description"])
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
