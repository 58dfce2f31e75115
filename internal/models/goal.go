package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal of a user. IsCompleted is derived from the amounts
// on every progress update, it can never be set directly.
type Goal struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"index"`
	User          User            `json:"-"`
	Title         string          `json:"title" example:"Emergency Fund"`
	Description   string          `json:"description" example:"Build an emergency fund for unexpected expenses"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,2)" example:"1000.00"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,2)" example:"150.00"`
	TargetDate    *time.Time      `json:"targetDate"`
	Icon          string          `json:"icon" example:"fas fa-shield-alt"`
	Color         string          `json:"color" example:"#10B981"`
	IsCompleted   bool            `json:"isCompleted" example:"false"`
}

var (
	ErrGoalTitleEmpty          = errors.New("the goal title must be set")
	ErrGoalTargetNotPositive   = errors.New("goal target amounts must be larger than zero")
	ErrGoalAmountNegative      = errors.New("the goal progress amount must not be negative")
	ErrContributionNotPositive = errors.New("goal contributions must be larger than zero")
)

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	return tx.First(&User{}, g.UserID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)
	g.Description = strings.TrimSpace(g.Description)

	if g.Title == "" {
		return ErrGoalTitleEmpty
	}

	if g.Icon == "" {
		g.Icon = "fas fa-bullseye"
	}

	if g.Color == "" {
		g.Color = "#3B82F6"
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalAmountNegative
	}

	return nil
}

// SetProgress sets the saved amount of the goal to an absolute value and
// derives the completion flag. Overshooting the target and lowering the
// amount again are both allowed.
func (g *Goal) SetProgress(db *gorm.DB, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrGoalAmountNegative
	}

	return db.Model(g).Select("CurrentAmount", "IsCompleted").Updates(Goal{
		CurrentAmount: amount,
		IsCompleted:   amount.GreaterThanOrEqual(g.TargetAmount),
	}).Error
}

// AddContribution adds money to the goal. The goal is re-read inside the
// database transaction so that two concurrent contributions cannot lose an
// update.
func (g *Goal) AddContribution(db *gorm.DB, delta decimal.Decimal) error {
	if !decimal.Decimal.IsPositive(delta) {
		return ErrContributionNotPositive
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var goal Goal
		err := tx.First(&goal, g.ID).Error
		if err != nil {
			return err
		}

		amount := goal.CurrentAmount.Add(delta)
		err = tx.Model(&goal).Select("CurrentAmount", "IsCompleted").Updates(Goal{
			CurrentAmount: amount,
			IsCompleted:   amount.GreaterThanOrEqual(goal.TargetAmount),
		}).Error
		if err != nil {
			return err
		}

		*g = goal
		return nil
	})
}
