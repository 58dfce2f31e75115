package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	UserID     uuid.UUID       `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`      // ID of the user the budget belongs to
	CategoryID uuid.UUID       `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`  // ID of the category the budget limits
	Amount     decimal.Decimal `json:"amount" example:"300.00" minimum:"0.01" multipleOf:"0.01"` // The spending limit
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID:     editable.UserID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`        // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // The category the budget limits
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Spent    decimal.Decimal `json:"spent" example:"89.50"` // Running total of expenses against this budget
	Category models.Category `json:"category"`              // Metadata of the referenced category, "Other" when unknown
	Links    BudgetLinks     `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget, categories map[uuid.UUID]models.Category) Budget {
	url := c.GetString(string(models.DBContextURL))

	category, ok := categories[model.CategoryID]
	if !ok {
		category = models.OtherCategory
	}

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			UserID:     model.UserID,
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
		},
		Spent:    model.Spent,
		Category: category,
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The budget data, if creation was successful
}
