package models

import (
	"errors"

	"gorm.io/gorm"
)

// RecordTransaction persists a new transaction and maintains the running
// aggregates that depend on it: the user's balance and monthly totals, and
// the spent total of the budget for the transaction's category, if one
// exists.
//
// All writes happen in a single database transaction so that a failure
// cannot leave the balance updated without the matching budget update, or
// vice versa.
func RecordTransaction(db *gorm.DB, transaction *Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user User
		err := tx.First(&user, transaction.UserID).Error
		if err != nil {
			return err
		}

		err = tx.Create(transaction).Error
		if err != nil {
			return err
		}

		if transaction.Type == TransactionTypeIncome {
			return tx.Model(&user).Select("Balance", "MonthlyIncome").Updates(User{
				Balance:       user.Balance.Add(transaction.Amount),
				MonthlyIncome: user.MonthlyIncome.Add(transaction.Amount),
			}).Error
		}

		err = tx.Model(&user).Select("Balance", "MonthlySpent").Updates(User{
			Balance:      user.Balance.Sub(transaction.Amount),
			MonthlySpent: user.MonthlySpent.Add(transaction.Amount),
		}).Error
		if err != nil {
			return err
		}

		// Expenses against a budgeted category also update the budget.
		// Unbudgeted categories are fine, everything else is an error.
		var budget Budget
		err = tx.Where("user_id = ? AND category_id = ?", transaction.UserID, transaction.CategoryID).First(&budget).Error
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				return nil
			}

			return err
		}

		return tx.Model(&budget).Select("Spent").Updates(Budget{
			Spent: budget.Spent.Add(transaction.Amount),
		}).Error
	})
}
