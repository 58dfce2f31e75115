package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User is the owner of transactions, budgets and goals. The balance and the
// monthly totals are running aggregates that are maintained incrementally by
// RecordTransaction.
type User struct {
	DefaultModel
	Username      string          `json:"username" gorm:"uniqueIndex" example:"student"`
	Balance       decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,2)" example:"847.32"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,2)" example:"1250.00"`
	MonthlySpent  decimal.Decimal `json:"monthlySpent" gorm:"type:DECIMAL(20,2)" example:"402.68"`
}

var (
	ErrUsernameEmpty     = errors.New("the username must be set")
	ErrUsernameNotUnique = errors.New("this username is already in use")
)

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// RecomputeAggregates rebuilds all running totals for the user from the
// transaction log. The balance and the budget totals are all-time sums, the
// monthly totals are the sums for the current calendar month.
//
// The operation is idempotent and serves as the repair path for aggregates
// that drifted from the transaction log.
func (u *User) RecomputeAggregates(db *gorm.DB, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var transactions []Transaction
		err := tx.Where(&Transaction{UserID: u.ID}).Find(&transactions).Error
		if err != nil {
			return err
		}

		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

		var balance, monthlyIncome, monthlySpent decimal.Decimal
		spent := make(map[uuid.UUID]decimal.Decimal)

		for _, transaction := range transactions {
			inMonth := !transaction.Date.Before(monthStart)

			switch transaction.Type {
			case TransactionTypeIncome:
				balance = balance.Add(transaction.Amount)
				if inMonth {
					monthlyIncome = monthlyIncome.Add(transaction.Amount)
				}
			case TransactionTypeExpense:
				balance = balance.Sub(transaction.Amount)
				if inMonth {
					monthlySpent = monthlySpent.Add(transaction.Amount)
				}
				spent[transaction.CategoryID] = spent[transaction.CategoryID].Add(transaction.Amount)
			}
		}

		err = tx.Model(u).Select("Balance", "MonthlyIncome", "MonthlySpent").Updates(User{
			Balance:       balance,
			MonthlyIncome: monthlyIncome,
			MonthlySpent:  monthlySpent,
		}).Error
		if err != nil {
			return err
		}

		var budgets []Budget
		err = tx.Where(&Budget{UserID: u.ID}).Find(&budgets).Error
		if err != nil {
			return err
		}

		for i := range budgets {
			err = tx.Model(&budgets[i]).Select("Spent").Updates(Budget{Spent: spent[budgets[i].CategoryID]}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
