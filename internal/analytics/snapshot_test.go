package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(title string, amount float64, category string, date time.Time) model.Expense {
	return model.Expense{
		ID:       title,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func snapshotOf(expenses ...model.Expense) Snapshot {
	return Snapshot{
		Expenses:   expenses,
		Budget:     model.DefaultBudget,
		Currency:   model.DefaultCurrency,
		Categories: model.Categories(),
	}
}

func TestSnapshot_Totals(t *testing.T) {
	snap := snapshotOf(
		expense("Lunch", 100, "food", day(2024, 3, 1)),
		expense("Bus", 50, "transport", day(2024, 3, 2)),
	)

	assert.Equal(t, 150.0, snap.TotalExpenses())
	assert.Equal(t, 2, snap.Count())
	assert.Equal(t, 75.0, snap.AverageExpense())
}

func TestSnapshot_EmptyDegradesToZero(t *testing.T) {
	snap := snapshotOf()

	assert.Equal(t, 0.0, snap.TotalExpenses())
	assert.Equal(t, 0.0, snap.AverageExpense())
	assert.Empty(t, snap.TopExpenses(5))
	assert.Empty(t, snap.GroupBy(ByCategory))
	assert.Empty(t, snap.CategoryTotals())
	assert.Empty(t, snap.DailyAverages())

	_, ok := snap.HighestSpendingDay()
	assert.False(t, ok)
	_, ok = snap.MostUsedCategory()
	assert.False(t, ok)
	_, ok = snap.LargestExpense()
	assert.False(t, ok)

	status := snap.BudgetStatus()
	assert.Equal(t, 0.0, status.Spent)
	assert.Equal(t, snap.Budget, status.Remaining)
}

func TestSnapshot_WeekTotal_RollingWindow(t *testing.T) {
	now := day(2024, 3, 15)
	snap := snapshotOf(
		expense("Recent", 30, "food", day(2024, 3, 12)),
		expense("Edge", 20, "food", day(2024, 3, 8)), // exactly 7 days back
		expense("Old", 500, "food", day(2024, 3, 1)),
	)

	assert.Equal(t, 50.0, snap.WeekTotal(now))
}

func TestSnapshot_TodayTotal(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC)
	snap := snapshotOf(
		expense("Coffee", 4, "food", day(2024, 3, 15)),
		expense("Lunch", 12, "food", day(2024, 3, 15)),
		expense("Yesterday", 99, "food", day(2024, 3, 14)),
	)

	assert.Equal(t, 16.0, snap.TodayTotal(now))
}

func TestSnapshot_CategoryTotalsSumToGrandTotal(t *testing.T) {
	snap := snapshotOf(
		expense("A", 10.1, "food", day(2024, 3, 1)),
		expense("B", 20.2, "transport", day(2024, 3, 2)),
		expense("C", 30.3, "food", day(2024, 3, 3)),
		expense("D", 0.4, "other", day(2024, 3, 4)),
	)

	var sum float64
	for _, ct := range snap.CategoryTotals() {
		sum += ct.Total
	}
	require.InDelta(t, snap.TotalExpenses(), sum, 1e-9)
}
