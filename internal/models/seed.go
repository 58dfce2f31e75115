package models

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DemoUsername is the lookup key of the demo user created by SeedDemoData.
const DemoUsername = "student"

// SeedDemoData provisions the demo user with sample transactions, a budget
// and goals. It does nothing when the demo user already exists.
func SeedDemoData(db *gorm.DB) error {
	var existing User
	err := db.Where(&User{Username: DemoUsername}).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrResourceNotFound) {
		return err
	}

	user := User{Username: DemoUsername}
	err = db.Create(&user).Error
	if err != nil {
		return err
	}

	categories := make(map[string]Category)
	var all []Category
	err = db.Find(&all).Error
	if err != nil {
		return err
	}
	for _, category := range all {
		categories[category.Name] = category
	}

	err = db.Create(&Budget{
		UserID:     user.ID,
		CategoryID: categories["Food & Dining"].ID,
		Amount:     decimal.RequireFromString("300.00"),
	}).Error
	if err != nil {
		return err
	}

	now := time.Now().In(time.UTC)
	samples := []Transaction{
		{UserID: user.ID, Type: TransactionTypeExpense, Amount: decimal.RequireFromString("4.85"), CategoryID: categories["Food & Dining"].ID, Description: "Coffee", Date: now.AddDate(0, 0, -1)},
		{UserID: user.ID, Type: TransactionTypeExpense, Amount: decimal.RequireFromString("12.50"), CategoryID: categories["Food & Dining"].ID, Description: "Lunch", Date: now.AddDate(0, 0, -2)},
		{UserID: user.ID, Type: TransactionTypeExpense, Amount: decimal.RequireFromString("25.00"), CategoryID: categories["Transportation"].ID, Description: "Bus Pass", Date: now.AddDate(0, 0, -3)},
		{UserID: user.ID, Type: TransactionTypeExpense, Amount: decimal.RequireFromString("15.99"), CategoryID: categories["Entertainment"].ID, Description: "Movie Ticket", Date: now.AddDate(0, 0, -4)},
		{UserID: user.ID, Type: TransactionTypeIncome, Amount: decimal.RequireFromString("150.00"), CategoryID: categories["Income"].ID, Description: "Part-time Job", Date: now.AddDate(0, 0, -5)},
	}

	for i := range samples {
		err = RecordTransaction(db, &samples[i])
		if err != nil {
			return err
		}
	}

	emergencyTarget := now.AddDate(0, 0, 90)
	emergencyFund := Goal{
		UserID:       user.ID,
		Title:        "Emergency Fund",
		Description:  "Build an emergency fund for unexpected expenses",
		TargetAmount: decimal.RequireFromString("1000.00"),
		TargetDate:   &emergencyTarget,
		Icon:         "fas fa-shield-alt",
		Color:        "#10B981",
	}
	err = db.Create(&emergencyFund).Error
	if err != nil {
		return err
	}

	err = emergencyFund.SetProgress(db, decimal.RequireFromString("150.00"))
	if err != nil {
		return err
	}

	laptopTarget := now.AddDate(0, 0, 120)
	err = db.Create(&Goal{
		UserID:       user.ID,
		Title:        "New Laptop",
		Description:  "Save money for a new laptop for studies",
		TargetAmount: decimal.RequireFromString("800.00"),
		TargetDate:   &laptopTarget,
		Icon:         "fas fa-laptop",
		Color:        "#3B82F6",
	}).Error
	if err != nil {
		return err
	}

	log.Info().Str("username", DemoUsername).Msg("demo data seeded")
	return nil
}
