package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pockettrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Username string `json:"username" example:"student" default:""` // Unique lookup key for the user
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Username: editable.Username,
	}
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/student"`                                            // The user itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?user=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions of this user
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?user=d430d7c3-d14c-4712-9336-ee56965a6673"`     // Budgets of this user
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals?user=d430d7c3-d14c-4712-9336-ee56965a6673"`         // Goals of this user
}

// User is the representation of a User in API v1.
type User struct {
	models.DefaultModel
	UserEditable
	Balance       decimal.Decimal `json:"balance" example:"847.32"`        // Current balance across all transactions
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"1250.00"` // Running income total for the month
	MonthlySpent  decimal.Decimal `json:"monthlySpent" example:"402.68"`   // Running spending total for the month
	Links         UserLinks       `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Username: model.Username,
		},
		Balance:       model.Balance,
		MonthlyIncome: model.MonthlyIncome,
		MonthlySpent:  model.MonthlySpent,
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/v1/users/%s", url, model.Username),
			Transactions: fmt.Sprintf("%s/v1/transactions?user=%s", url, model.ID),
			Budgets:      fmt.Sprintf("%s/v1/budgets?user=%s", url, model.ID),
			Goals:        fmt.Sprintf("%s/v1/goals?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                          // List of users
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created users
}

func (r *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *User   `json:"data"`                                                          // The user data
}
