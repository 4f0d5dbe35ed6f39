package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// Dimension selects the bucketing rule for GroupBy.
type Dimension string

// Supported grouping dimensions.
const (
	ByCategory Dimension = "category"
	ByWeek     Dimension = "week"
	ByMonth    Dimension = "month"
	ByWeekday  Dimension = "weekday"
)

// Group is one bucket of a breakdown. Percent is measured against the
// snapshot's grand total, not the filtered subset.
type Group struct {
	Label   string
	Color   string
	Total   float64
	Percent float64
}

// CategoryTotal is one category's summed amount, in first-encountered
// order of the expense iteration.
type CategoryTotal struct {
	Category string
	Total    float64
}

// WeekNumber computes the week-of-year bucket for a date:
// ceil((daysSinceJan1 + weekdayOfJan1 + 1) / 7). This intentionally
// differs from the ISO-8601 week rule and must stay bit-for-bit
// compatible with the persisted history of existing ledgers.
func WeekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	days := date.Sub(jan1).Hours() / 24
	return int(math.Ceil((days + float64(jan1.Weekday()) + 1) / 7))
}

// WeekLabel returns the display label for a date's week bucket.
func WeekLabel(date time.Time) string {
	return fmt.Sprintf("Week %d", WeekNumber(date))
}

// MonthLabel returns the short-month-plus-year bucket label, e.g. "Jan 2024".
func MonthLabel(date time.Time) string {
	return date.Format("Jan 2006")
}

// WeekdayLabel returns the short weekday bucket label, e.g. "Mon".
func WeekdayLabel(date time.Time) string {
	return date.Format("Mon")
}

// GroupBy partitions the snapshot's expenses along the given dimension.
// Category groups follow catalog order and exclude empty categories;
// time groups appear in first-encountered order of the expense
// iteration, which is stable for a given snapshot.
func (s Snapshot) GroupBy(dim Dimension) []Group {
	if dim == ByCategory {
		return s.categoryDistribution()
	}

	var keyFn func(model.Expense) string
	switch dim {
	case ByWeek:
		keyFn = func(e model.Expense) string { return WeekLabel(e.Date) }
	case ByMonth:
		keyFn = func(e model.Expense) string { return MonthLabel(e.Date) }
	case ByWeekday:
		keyFn = func(e model.Expense) string { return WeekdayLabel(e.Date) }
	default:
		keyFn = func(e model.Expense) string { return MonthLabel(e.Date) }
	}

	grand := s.TotalExpenses()
	totals := make(map[string]float64)
	var order []string

	for _, e := range s.Expenses {
		key := keyFn(e)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += e.Amount
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Label:   key,
			Total:   totals[key],
			Percent: percentOf(totals[key], grand),
		})
	}
	return groups
}

// CategoryTotals sums expenses per category. Only categories with at
// least one expense appear, in first-encountered order.
func (s Snapshot) CategoryTotals() []CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for _, e := range s.Expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	return out
}

// CategoryBreakdown enumerates the full category catalog, including
// categories with a zero total.
func (s Snapshot) CategoryBreakdown() []Group {
	grand := s.TotalExpenses()
	totals := s.categoryTotalMap()

	groups := make([]Group, 0, len(s.Categories))
	for _, cat := range s.Categories {
		total := totals[cat.Value]
		groups = append(groups, Group{
			Label:   cat.Name(),
			Color:   cat.Color,
			Total:   total,
			Percent: percentOf(total, grand),
		})
	}
	return groups
}

// categoryDistribution is the percentage view: catalog order, empty
// categories excluded.
func (s Snapshot) categoryDistribution() []Group {
	grand := s.TotalExpenses()
	totals := s.categoryTotalMap()

	var groups []Group
	for _, cat := range s.Categories {
		total := totals[cat.Value]
		if total <= 0 {
			continue
		}
		groups = append(groups, Group{
			Label:   cat.Name(),
			Color:   cat.Color,
			Total:   total,
			Percent: percentOf(total, grand),
		})
	}
	return groups
}

func (s Snapshot) categoryTotalMap() map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range s.Expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}
