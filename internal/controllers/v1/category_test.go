package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pockettrack/backend/internal/controllers/v1"
	"github.com/pockettrack/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name string
		path string
	}{
		{"Collection", "http://example.com/v1/categories"},
		{"Detail", fmt.Sprintf("http://example.com/v1/categories/%s", categoryID(suite.T(), "Income"))},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetList() {
	t := suite.T()

	r := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 7)

	// Sorted by name
	assert.Equal(t, "Entertainment", response.Data[0].Name)
	assert.Equal(t, "Transportation", response.Data[6].Name)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	t := suite.T()

	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", categoryID(t, "Food & Dining")), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "Food & Dining", response.Data.Name)
	assert.Equal(t, "fas fa-utensils", response.Data.Icon)
}

func (suite *TestSuiteStandard) TestCategoryGetErrors() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Invalid ID", "http://example.com/v1/categories/not-a-uuid", http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
