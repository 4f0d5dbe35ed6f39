package analytics

import "time"

// TrendPoint is one month of the spending trend.
type TrendPoint struct {
	Month string
	Total float64
}

// MonthlyTrend reports totals for the month containing now and the two
// preceding calendar months, oldest first. Months with no expenses
// appear with a zero total.
func (s Snapshot) MonthlyTrend(now time.Time) []TrendPoint {
	totals := make(map[string]float64)
	for _, e := range s.Expenses {
		totals[MonthLabel(e.Date)] += e.Amount
	}

	points := make([]TrendPoint, 0, 3)
	for i := 2; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		label := MonthLabel(month)
		points = append(points, TrendPoint{
			Month: label,
			Total: totals[label],
		})
	}
	return points
}
