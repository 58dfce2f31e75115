package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	UserID       uuid.UUID       `json:"userId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`          // ID of the user the goal belongs to
	Title        string          `json:"title" example:"Emergency Fund"`                                 // Title of the goal
	Description  string          `json:"description" example:"Three months of expenses" default:""`     // Description of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"1000.00" minimum:"0.01" multipleOf:"0.01"` // The amount to save towards
	TargetDate   *time.Time      `json:"targetDate" example:"2024-06-01T00:00:00Z"`                      // Optional deadline for the goal
	Icon         string          `json:"icon" example:"fas fa-piggy-bank" default:"fas fa-bullseye"`     // Icon of the goal
	Color        string          `json:"color" example:"#10B981" default:"#3B82F6"`                      // Color of the goal
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		UserID:       editable.UserID,
		Title:        editable.Title,
		Description:  editable.Description,
		TargetAmount: editable.TargetAmount,
		TargetDate:   editable.TargetDate,
		Icon:         editable.Icon,
		Color:        editable.Color,
	}
}

// GoalProgress sets the saved amount of a goal to an absolute value.
type GoalProgress struct {
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"250.00" minimum:"0" multipleOf:"0.01"` // The new saved amount
}

// GoalContribution adds to the saved amount of a goal.
type GoalContribution struct {
	Amount decimal.Decimal `json:"amount" example:"50.00" minimum:"0.01" multipleOf:"0.01"` // The amount to add to the saved total
}

type GoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`               // The goal itself
	Progress      string `json:"progress" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/progress"`  // Sets the saved amount
	Contributions string `json:"contributions" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/contributions"` // Adds to the saved amount
}

// Goal is the representation of a Goal in API v1.
type Goal struct {
	models.DefaultModel
	GoalEditable
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"150.00"` // The amount saved so far
	IsCompleted   bool            `json:"isCompleted" example:"false"`    // True once the saved amount reaches the target
	Links         GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			UserID:       model.UserID,
			Title:        model.Title,
			Description:  model.Description,
			TargetAmount: model.TargetAmount,
			TargetDate:   model.TargetDate,
			Icon:         model.Icon,
			Color:        model.Color,
		},
		CurrentAmount: model.CurrentAmount,
		IsCompleted:   model.IsCompleted,
		Links: GoalLinks{
			Self:          fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Progress:      fmt.Sprintf("%s/v1/goals/%s/progress", url, model.ID),
			Contributions: fmt.Sprintf("%s/v1/goals/%s/contributions", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of goals
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The goal data, if the request was successful
}
