// Package insights evaluates threshold rules over a user's current state and
// produces human-readable notifications. Rule evaluation is stateless: the
// same snapshot always produces the same notifications with the same IDs, so
// regenerating never duplicates an existing condition.
package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Type classifies a notification.
type Type string

const (
	TypeBudgetWarning Type = "budget_warning"
	TypeGoalReminder  Type = "goal_reminder"
	TypeSavingsTip    Type = "savings_tip"
	TypeAchievement   Type = "achievement"
)

// Notification is a single alert for the user. The ID is a deterministic
// composite of the rule and the entity that triggered it.
type Notification struct {
	ID        string    `json:"id" example:"budget-over-5b4d4f13-9830-4c7e-b114-297faad6cdce"`
	Type      Type      `json:"type" example:"budget_warning"`
	Title     string    `json:"title" example:"Budget Exceeded!"`
	Message   string    `json:"message" example:"You've exceeded your Food & Dining budget by $12.50"`
	Icon      string    `json:"icon" example:"fas fa-exclamation-triangle"`
	Color     string    `json:"color" example:"#EF4444"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the state the rules are evaluated against.
type Snapshot struct {
	User       models.User
	Budgets    []models.Budget
	Goals      []models.Goal
	Categories map[uuid.UUID]models.Category
}

// rules are evaluated independently and in order. Every rule returns all
// notifications that apply, the rules are not mutually exclusive.
var rules = []func(Snapshot, time.Time) []Notification{
	budgetRules,
	goalRules,
	savingsRules,
}

// Generate evaluates all rules against the snapshot.
func Generate(snapshot Snapshot, now time.Time) []Notification {
	notifications := make([]Notification, 0)
	for _, rule := range rules {
		notifications = append(notifications, rule(snapshot, now)...)
	}

	return notifications
}

func budgetRules(snapshot Snapshot, now time.Time) []Notification {
	var notifications []Notification

	for _, budget := range snapshot.Budgets {
		if !budget.Amount.IsPositive() {
			continue
		}

		name := categoryName(snapshot.Categories, budget.CategoryID)
		usage := budget.Spent.Div(budget.Amount).Mul(oneHundred)

		if usage.GreaterThanOrEqual(oneHundred) {
			notifications = append(notifications, Notification{
				ID:        fmt.Sprintf("budget-over-%s", budget.ID),
				Type:      TypeBudgetWarning,
				Title:     "Budget Exceeded!",
				Message:   fmt.Sprintf("You've exceeded your %s budget by $%s", name, budget.Spent.Sub(budget.Amount).StringFixed(2)),
				Icon:      "fas fa-exclamation-triangle",
				Color:     "#EF4444",
				CreatedAt: now,
			})
		} else if usage.GreaterThanOrEqual(decimal.NewFromInt(80)) {
			notifications = append(notifications, Notification{
				ID:        fmt.Sprintf("budget-warning-%s", budget.ID),
				Type:      TypeBudgetWarning,
				Title:     "Budget Alert",
				Message:   fmt.Sprintf("You've used %s%% of your %s budget", usage.Round(0), name),
				Icon:      "fas fa-exclamation-circle",
				Color:     "#F59E0B",
				CreatedAt: now,
			})
		}
	}

	return notifications
}

func goalRules(snapshot Snapshot, now time.Time) []Notification {
	var notifications []Notification

	for _, goal := range snapshot.Goals {
		if goal.IsCompleted || !goal.TargetAmount.IsPositive() {
			continue
		}

		progress := goal.CurrentAmount.Div(goal.TargetAmount).Mul(oneHundred)

		if goal.TargetDate != nil {
			daysLeft := int(math.Ceil(goal.TargetDate.Sub(now).Hours() / 24))

			if daysLeft <= 7 && progress.LessThan(decimal.NewFromInt(80)) {
				notifications = append(notifications, Notification{
					ID:        fmt.Sprintf("goal-reminder-%s", goal.ID),
					Type:      TypeGoalReminder,
					Title:     "Goal Deadline Approaching",
					Message:   fmt.Sprintf("Only %d days left to reach your %q goal!", daysLeft, goal.Title),
					Icon:      "fas fa-clock",
					Color:     "#F59E0B",
					CreatedAt: now,
				})
			}
		}

		if progress.GreaterThanOrEqual(oneHundred) {
			notifications = append(notifications, Notification{
				ID:        fmt.Sprintf("goal-achieved-%s", goal.ID),
				Type:      TypeAchievement,
				Title:     "Goal Achieved! 🎉",
				Message:   fmt.Sprintf("Congratulations! You've reached your %q goal!", goal.Title),
				Icon:      "fas fa-trophy",
				Color:     "#10B981",
				CreatedAt: now,
			})
		}
	}

	return notifications
}

func savingsRules(snapshot Snapshot, now time.Time) []Notification {
	income := snapshot.User.MonthlyIncome
	if !income.IsPositive() {
		return nil
	}

	rate := income.Sub(snapshot.User.MonthlySpent).Div(income).Mul(oneHundred)

	if rate.LessThan(decimal.NewFromInt(10)) {
		return []Notification{{
			ID:        fmt.Sprintf("savings-low-%s", snapshot.User.ID),
			Type:      TypeSavingsTip,
			Title:     "Savings Tip",
			Message:   "Try the 50/30/20 rule: 50% needs, 30% wants, 20% savings",
			Icon:      "fas fa-lightbulb",
			Color:     "#3B82F6",
			CreatedAt: now,
		}}
	}

	if rate.GreaterThan(decimal.NewFromInt(20)) {
		return []Notification{{
			ID:        fmt.Sprintf("savings-high-%s", snapshot.User.ID),
			Type:      TypeAchievement,
			Title:     "Great Savings!",
			Message:   fmt.Sprintf("You're saving %s%% of your income. Keep it up!", rate.Round(1)),
			Icon:      "fas fa-thumbs-up",
			Color:     "#10B981",
			CreatedAt: now,
		}}
	}

	return nil
}

func categoryName(categories map[uuid.UUID]models.Category, id uuid.UUID) string {
	if category, ok := categories[id]; ok {
		return category.Name
	}

	return models.OtherCategory.Name
}
