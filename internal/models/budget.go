package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a per-category spending limit of a user. Spent is a running
// total that RecordTransaction maintains for matching expenses.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category"`
	User       User            `json:"-"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_user_category"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,2)" example:"300.00"`
	Spent      decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,2)" example:"89.50"`
}

var (
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetExists            = errors.New("there already is a budget for this category")
)

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	return tx.First(&User{}, b.UserID).Error
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrBudgetAmountNotPositive
	}

	return nil
}
