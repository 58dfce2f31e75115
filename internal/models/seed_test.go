package models_test

import (
	"github.com/pockettrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSeedDemoData() {
	t := suite.T()

	require.NoError(t, models.SeedDemoData(models.DB))

	var user models.User
	require.NoError(t, models.DB.Where(&models.User{Username: models.DemoUsername}).First(&user).Error)

	// 150.00 income minus 4.85 + 12.50 + 25.00 + 15.99 in expenses
	assert.True(t, user.Balance.Equal(decimal.RequireFromString("91.66")), "balance is %s", user.Balance)

	var transactions int64
	require.NoError(t, models.DB.Model(&models.Transaction{}).Where(&models.Transaction{UserID: user.ID}).Count(&transactions).Error)
	assert.Equal(t, int64(5), transactions)

	var budget models.Budget
	require.NoError(t, models.DB.Where(&models.Budget{UserID: user.ID}).First(&budget).Error)
	assert.True(t, budget.Amount.Equal(decimal.RequireFromString("300.00")), "budget amount is %s", budget.Amount)
	assert.True(t, budget.Spent.Equal(decimal.RequireFromString("17.35")), "budget spent is %s", budget.Spent)

	var goals []models.Goal
	require.NoError(t, models.DB.Where(&models.Goal{UserID: user.ID}).Find(&goals).Error)
	require.Len(t, goals, 2)
}

func (suite *TestSuiteStandard) TestSeedDemoDataIdempotent() {
	t := suite.T()

	require.NoError(t, models.SeedDemoData(models.DB))
	require.NoError(t, models.SeedDemoData(models.DB))

	var users int64
	require.NoError(t, models.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)

	var transactions int64
	require.NoError(t, models.DB.Model(&models.Transaction{}).Count(&transactions).Error)
	assert.Equal(t, int64(5), transactions)
}
