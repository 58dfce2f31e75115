package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pockettrack/backend/internal/controllers/v1"
	"github.com/pockettrack/backend/internal/models"
	"github.com/pockettrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"Collection", "http://example.com/v1/transactions", "GET, POST"},
		{"Detail", fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	food := categoryID(t, "Food & Dining")

	transaction := createTestTransaction(t, v1.TransactionEditable{
		UserID:      user.Data.ID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("4.85"),
		CategoryID:  food,
		Description: "Starbucks Coffee",
	})

	assert.Equal(t, "Starbucks Coffee", transaction.Data.Description)
	assert.Equal(t, "Food & Dining", transaction.Data.Category.Name)
	assert.False(t, transaction.Data.Date.IsZero(), "date must default to the current time")

	// The user aggregates must reflect the expense
	r := test.Request(t, http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var refreshed v1.UserResponse
	test.DecodeResponse(t, &r, &refreshed)
	assert.True(t, refreshed.Data.Balance.Equal(decimal.RequireFromString("-4.85")), "balance is %s", refreshed.Data.Balance)
	assert.True(t, refreshed.Data.MonthlySpent.Equal(decimal.RequireFromString("4.85")), "monthly spent is %s", refreshed.Data.MonthlySpent)
}

// An unknown category ID is accepted and rendered as "Other".
func (suite *TestSuiteStandard) TestTransactionCreateUnknownCategory() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		CategoryID: uuid.New(),
	})

	assert.Equal(suite.T(), "Other", transaction.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestTransactionCreateErrors() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken JSON", `{ broken`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{
			"Unknown user",
			[]v1.TransactionEditable{{UserID: uuid.New(), Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(1)}},
			http.StatusNotFound,
		},
		{
			"Invalid type",
			[]v1.TransactionEditable{{UserID: user.Data.ID, Type: "transfer", Amount: decimal.NewFromFloat(1)}},
			http.StatusBadRequest,
		},
		{
			"Zero amount",
			[]v1.TransactionEditable{{UserID: user.Data.ID, Type: models.TransactionTypeExpense}},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	food := categoryID(t, "Food & Dining")

	for _, description := range []string{"First", "Second", "Third"} {
		createTestTransaction(t, v1.TransactionEditable{
			UserID:      user.Data.ID,
			CategoryID:  food,
			Description: description,
		})
	}

	// Transactions of another user must not appear in the list
	createTestTransaction(t, v1.TransactionEditable{Description: "Not mine"})

	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 3)

	// Newest first
	assert.Equal(t, "Third", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestTransactionsGetListLimit() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	for range 5 {
		createTestTransaction(t, v1.TransactionEditable{UserID: user.Data.ID})
	}

	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?user=%s&limit=2", user.Data.ID), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)
	assert.Len(t, response.Data, 2)
}

func (suite *TestSuiteStandard) TestTransactionsGetListErrors() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Missing user parameter", "http://example.com/v1/transactions", http.StatusBadRequest},
		{"Invalid user parameter", "http://example.com/v1/transactions?user=not-a-uuid", http.StatusBadRequest},
		{"Unknown user", fmt.Sprintf("http://example.com/v1/transactions?user=%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	t := suite.T()

	transaction := createTestTransaction(t, v1.TransactionEditable{Description: "Lunch"})

	r := test.Request(t, http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "Lunch", response.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionGetErrors() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Invalid ID", "http://example.com/v1/transactions/not-a-uuid", http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
