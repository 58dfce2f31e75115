package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pockettrack/backend/internal/controllers/v1"
	"github.com/pockettrack/backend/internal/models"
	"github.com/pockettrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUsersOptions() {
	tests := []struct {
		name   string
		path   string
		allow  string
		status int
	}{
		{"Collection", "http://example.com/v1/users", "GET, POST", http.StatusNoContent},
		{"Detail", "", "GET", http.StatusNoContent},
	}

	user := createTestUser(suite.T(), v1.UserEditable{})
	tests[1].path = fmt.Sprintf("http://example.com/v1/users/%s", user.Data.Username)

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestUserCreate() {
	user := createTestUser(suite.T(), v1.UserEditable{Username: "fiona"})

	assert.Equal(suite.T(), "fiona", user.Data.Username)
	assert.True(suite.T(), user.Data.Balance.IsZero())
	assert.True(suite.T(), user.Data.MonthlyIncome.IsZero())
	assert.True(suite.T(), user.Data.MonthlySpent.IsZero())
	assert.Equal(suite.T(), "http://example.com/v1/users/fiona", user.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestUserCreateErrors() {
	// An existing username to provoke the uniqueness error
	createTestUser(suite.T(), v1.UserEditable{Username: "highlander"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken JSON", `{ broken`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Not an array", v1.UserEditable{Username: "solo"}, http.StatusBadRequest},
		{"Empty username", []v1.UserEditable{{Username: ""}}, http.StatusBadRequest},
		{"Duplicate username", []v1.UserEditable{{Username: "highlander"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/users", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// A batch create returns the highest error status and per-resource errors.
func (suite *TestSuiteStandard) TestUserCreateBatch() {
	t := suite.T()

	body := []v1.UserEditable{
		{Username: "works"},
		{Username: ""},
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/users", body)
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.UserCreateResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 2)
	assert.Nil(t, response.Data[0].Error)
	require.NotNil(t, response.Data[1].Error)
	assert.Equal(t, models.ErrUsernameEmpty.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestUsersGetList() {
	t := suite.T()

	createTestUser(t, v1.UserEditable{Username: "zoe"})
	createTestUser(t, v1.UserEditable{Username: "adam"})

	r := test.Request(t, http.MethodGet, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 2)
	assert.Equal(t, "adam", response.Data[0].Username)
	assert.Equal(t, "zoe", response.Data[1].Username)
}

func (suite *TestSuiteStandard) TestUserGet() {
	t := suite.T()

	createTestUser(t, v1.UserEditable{Username: "fiona"})

	r := test.Request(t, http.MethodGet, "http://example.com/v1/users/fiona", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "fiona", response.Data.Username)
}

func (suite *TestSuiteStandard) TestUserGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/nobody", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUserRecompute() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{Username: "fiona"})
	createTestTransaction(t, v1.TransactionEditable{
		UserID:     user.Data.ID,
		Type:       models.TransactionTypeIncome,
		Amount:     decimal.RequireFromString("100.00"),
		CategoryID: categoryID(t, "Income"),
	})

	// Corrupt the balance directly, the endpoint has to repair it
	var dbUser models.User
	require.NoError(t, models.DB.First(&dbUser, user.Data.ID).Error)
	require.NoError(t, models.DB.Model(&dbUser).Select("Balance").Updates(models.User{
		Balance: decimal.RequireFromString("9999.00"),
	}).Error)

	r := test.Request(t, http.MethodPost, "http://example.com/v1/users/fiona/recompute", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(t, &r, &response)
	assert.True(t, response.Data.Balance.Equal(decimal.RequireFromString("100.00")), "balance is %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestUserRecomputeNotFound() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users/nobody/recompute", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUsersDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
