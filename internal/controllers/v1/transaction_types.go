package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/models"
	pt_uuid "github.com/pockettrack/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	UserID      uuid.UUID              `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`     // ID of the user the transaction belongs to
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`             // Direction of the transaction
	Amount      decimal.Decimal        `json:"amount" example:"4.85" minimum:"0.01" multipleOf:"0.01"`    // The amount of the transaction
	CategoryID  uuid.UUID              `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // ID of the category
	Description string                 `json:"description" example:"Starbucks Coffee" default:""`         // Description of the transaction
	Date        time.Time              `json:"date" example:"2024-01-19T18:43:00.271152Z"`                // Date of the transaction, defaults to the current time
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:      editable.UserID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		CategoryID:  editable.CategoryID,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	User string `json:"user" example:"https://example.com/api/v1/transactions?user=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions of the same user
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Category models.Category  `json:"category"` // Metadata of the referenced category, "Other" when unknown
	Links    TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction, categories map[uuid.UUID]models.Category) Transaction {
	url := c.GetString(string(models.DBContextURL))

	category, ok := categories[model.CategoryID]
	if !ok {
		category = models.OtherCategory
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:      model.UserID,
			Type:        model.Type,
			Amount:      model.Amount,
			CategoryID:  model.CategoryID,
			Description: model.Description,
			Date:        model.Date,
		},
		Category: category,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/transactions?user=%s", url, model.UserID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	User  pt_uuid.UUID `form:"user"`  // ID of the user the transactions belong to
	Limit int          `form:"limit"` // Maximum number of transactions to return, all when unset
}
