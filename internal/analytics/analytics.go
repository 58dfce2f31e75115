// Package analytics derives read-side spending statistics from a user's
// transaction history. All computations are pure: they never touch the
// database, never fail, and degrade to empty results on empty input.
package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CategorySpend is one entry of the per-category spending breakdown.
type CategorySpend struct {
	Category   models.Category `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"` // Rounded share of the total expenses
}

// Breakdown groups all expense transactions by category and computes each
// category's share of the total. Categories are sorted by amount, largest
// first. When there are no expenses, all percentages are zero.
func Breakdown(transactions []models.Transaction, categories map[uuid.UUID]models.Category) []CategorySpend {
	amounts := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	var total decimal.Decimal

	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		if _, ok := amounts[transaction.CategoryID]; !ok {
			order = append(order, transaction.CategoryID)
		}

		amounts[transaction.CategoryID] = amounts[transaction.CategoryID].Add(transaction.Amount)
		total = total.Add(transaction.Amount)
	}

	breakdown := make([]CategorySpend, 0, len(order))
	for _, id := range order {
		amount := amounts[id]

		var percentage int64
		if total.IsPositive() {
			percentage = amount.Mul(oneHundred).Div(total).Round(0).IntPart()
		}

		breakdown = append(breakdown, CategorySpend{
			Category:   lookup(categories, id),
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}

// CategoryTrend compares a category's spending in the recent 30-day window
// with the 30 days before that.
type CategoryTrend struct {
	Category models.Category `json:"category"`
	Recent   decimal.Decimal `json:"recent"`
	Previous decimal.Decimal `json:"previous"`
	Change   decimal.Decimal `json:"change"` // Percentage change, 0 when there was no previous spending
}

// Report is the complete trend analysis for a transaction history.
type Report struct {
	TotalChange   decimal.Decimal `json:"totalChange"`
	RecentTotal   decimal.Decimal `json:"recentTotal"`
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	Categories    []CategoryTrend `json:"categories"`
}

// Trends compares expenses in [now-30d, now) with those in [now-60d,
// now-30d), overall and per category. A category with no spending in the
// previous window reports a change of 0%, not an infinite increase.
// Categories are sorted by the absolute change, largest first.
func Trends(transactions []models.Transaction, categories map[uuid.UUID]models.Category, now time.Time) Report {
	windowStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	type window struct {
		recent   decimal.Decimal
		previous decimal.Decimal
	}

	perCategory := make(map[uuid.UUID]*window)
	var order []uuid.UUID
	var report Report

	track := func(id uuid.UUID) *window {
		w, ok := perCategory[id]
		if !ok {
			w = &window{}
			perCategory[id] = w
			order = append(order, id)
		}

		return w
	}

	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		date := transaction.Date
		switch {
		case !date.Before(windowStart) && date.Before(now):
			report.RecentTotal = report.RecentTotal.Add(transaction.Amount)
			w := track(transaction.CategoryID)
			w.recent = w.recent.Add(transaction.Amount)
		case !date.Before(previousStart) && date.Before(windowStart):
			report.PreviousTotal = report.PreviousTotal.Add(transaction.Amount)
			w := track(transaction.CategoryID)
			w.previous = w.previous.Add(transaction.Amount)
		}
	}

	report.TotalChange = change(report.RecentTotal, report.PreviousTotal)

	report.Categories = make([]CategoryTrend, 0, len(order))
	for _, id := range order {
		w := perCategory[id]
		if !w.recent.IsPositive() && !w.previous.IsPositive() {
			continue
		}

		report.Categories = append(report.Categories, CategoryTrend{
			Category: lookup(categories, id),
			Recent:   w.recent,
			Previous: w.previous,
			Change:   change(w.recent, w.previous),
		})
	}

	sort.SliceStable(report.Categories, func(i, j int) bool {
		return report.Categories[i].Change.Abs().GreaterThan(report.Categories[j].Change.Abs())
	})

	return report
}

// change returns the percentage change from previous to recent. By
// definition it is 0 when there was no previous spending, even when recent
// is larger than zero.
func change(recent, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}

	return recent.Sub(previous).Div(previous).Mul(oneHundred).Round(2)
}

func lookup(categories map[uuid.UUID]models.Category, id uuid.UUID) models.Category {
	if category, ok := categories[id]; ok {
		return category
	}

	return models.OtherCategory
}
