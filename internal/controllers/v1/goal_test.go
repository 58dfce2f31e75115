package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pockettrack/backend/internal/controllers/v1"
	"github.com/pockettrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalsOptions() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"Collection", "http://example.com/v1/goals", "GET, POST"},
		{"Detail", goal.Data.Links.Self, "GET"},
		{"Progress", goal.Data.Links.Progress, "PATCH"},
		{"Contributions", goal.Data.Links.Contributions, "POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalCreate() {
	t := suite.T()

	targetDate := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	goal := createTestGoal(t, v1.GoalEditable{
		Title:        "  Emergency Fund  ",
		TargetAmount: decimal.RequireFromString("1000.00"),
		TargetDate:   &targetDate,
	})

	assert.Equal(t, "Emergency Fund", goal.Data.Title)
	assert.True(t, goal.Data.CurrentAmount.IsZero(), "saved amount must be initialized to zero, is %s", goal.Data.CurrentAmount)
	assert.False(t, goal.Data.IsCompleted)
	assert.Equal(t, "fas fa-bullseye", goal.Data.Icon)
	assert.Equal(t, "#3B82F6", goal.Data.Color)
	require.NotNil(t, goal.Data.TargetDate)
	assert.True(t, targetDate.Equal(*goal.Data.TargetDate))
}

func (suite *TestSuiteStandard) TestGoalCreateErrors() {
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
			[]v1.GoalEditable{{UserID: uuid.New(), Title: "Vacation", TargetAmount: decimal.NewFromFloat(500)}},
			http.StatusNotFound,
		},
		{
			"Empty title",
			[]v1.GoalEditable{{UserID: user.Data.ID, TargetAmount: decimal.NewFromFloat(500)}},
			http.StatusBadRequest,
		},
		{
			"Zero target amount",
			[]v1.GoalEditable{{UserID: user.Data.ID, Title: "Vacation"}},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetList() {
	t := suite.T()

	user := createTestUser(t, v1.UserEditable{})
	createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, Title: "First"})
	createTestGoal(t, v1.GoalEditable{UserID: user.Data.ID, Title: "Second"})

	// Goal of another user
	createTestGoal(t, v1.GoalEditable{Title: "Not mine"})

	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 2)

	// Newest first
	assert.Equal(t, "Second", response.Data[0].Title)
	assert.Equal(t, "First", response.Data[1].Title)
}

func (suite *TestSuiteStandard) TestGoalsGetListErrors() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Missing user parameter", "http://example.com/v1/goals", http.StatusBadRequest},
		{"Invalid user parameter", "http://example.com/v1/goals?user=not-a-uuid", http.StatusBadRequest},
		{"Unknown user", fmt.Sprintf("http://example.com/v1/goals?user=%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalGet() {
	t := suite.T()

	goal := createTestGoal(t, v1.GoalEditable{Title: "New Laptop"})

	r := test.Request(t, http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "New Laptop", response.Data.Title)
}

func (suite *TestSuiteStandard) TestGoalGetErrors() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Invalid ID", "http://example.com/v1/goals/not-a-uuid", http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalUpdateProgress() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: decimal.RequireFromString("800.00")})

	tests := []struct {
		name      string
		amount    string
		completed bool
	}{
		{"Below the target", "500.00", false},
		{"Just below the target", "799.99", false},
		{"Exactly the target", "800.00", true},
		{"Back below the target", "300.00", false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, goal.Data.Links.Progress, v1.GoalProgress{
				CurrentAmount: decimal.RequireFromString(tt.amount),
			})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Data.CurrentAmount.Equal(decimal.RequireFromString(tt.amount)), "saved amount is %s", response.Data.CurrentAmount)
			assert.Equal(t, tt.completed, response.Data.IsCompleted)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalUpdateProgressErrors() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid ID", "http://example.com/v1/goals/not-a-uuid/progress", v1.GoalProgress{}, http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/goals/%s/progress", uuid.New()), v1.GoalProgress{}, http.StatusNotFound},
		{"Broken JSON", goal.Data.Links.Progress, `{ broken`, http.StatusBadRequest},
		{"Negative amount", goal.Data.Links.Progress, v1.GoalProgress{CurrentAmount: decimal.NewFromFloat(-1)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalContribute() {
	t := suite.T()

	goal := createTestGoal(t, v1.GoalEditable{TargetAmount: decimal.RequireFromString("100.00")})

	r := test.Request(t, http.MethodPost, goal.Data.Links.Contributions, v1.GoalContribution{
		Amount: decimal.RequireFromString("60.00"),
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(t, &r, &response)
	assert.True(t, response.Data.CurrentAmount.Equal(decimal.RequireFromString("60.00")), "saved amount is %s", response.Data.CurrentAmount)
	assert.False(t, response.Data.IsCompleted)

	// A second contribution reaches the target
	r = test.Request(t, http.MethodPost, goal.Data.Links.Contributions, v1.GoalContribution{
		Amount: decimal.RequireFromString("40.00"),
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	test.DecodeResponse(t, &r, &response)
	assert.True(t, response.Data.CurrentAmount.Equal(decimal.RequireFromString("100.00")), "saved amount is %s", response.Data.CurrentAmount)
	assert.True(t, response.Data.IsCompleted)
}

func (suite *TestSuiteStandard) TestGoalContributeErrors() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid ID", "http://example.com/v1/goals/not-a-uuid/contributions", v1.GoalContribution{Amount: decimal.NewFromFloat(1)}, http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/goals/%s/contributions", uuid.New()), v1.GoalContribution{Amount: decimal.NewFromFloat(1)}, http.StatusNotFound},
		{"Broken JSON", goal.Data.Links.Contributions, `{ broken`, http.StatusBadRequest},
		{"Zero amount", goal.Data.Links.Contributions, v1.GoalContribution{}, http.StatusBadRequest},
		{"Negative amount", goal.Data.Links.Contributions, v1.GoalContribution{Amount: decimal.NewFromFloat(-5)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
