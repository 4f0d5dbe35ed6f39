package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmic-tools/cosmic-ledger/internal/analytics"
	"github.com/cosmic-tools/cosmic-ledger/internal/cli"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func statsCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending statistics",
		Long:  `Summarize spending: totals, averages, and a breakdown by category, week, month, or weekday.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			now := time.Now()
			symbol := snap.Currency

			fmt.Println(cli.FormatTitle("Spending Statistics"))
			fmt.Printf("  Total spent:   %s\n", cli.AmountStyle.Render(cli.Money(symbol, snap.TotalExpenses())))
			fmt.Printf("  Transactions:  %d\n", snap.Count())
			fmt.Printf("  Average:       %s\n", cli.Money(symbol, snap.AverageExpense()))
			fmt.Printf("  Today:         %s\n", cli.Money(symbol, snap.TodayTotal(now)))
			fmt.Printf("  This week:     %s\n\n", cli.Money(symbol, snap.WeekTotal(now)))

			renderGroups(snap.GroupBy(analytics.Dimension(by)), symbol)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "category", "breakdown dimension (category, week, month, weekday)")

	cmd.AddCommand(topCmd())
	cmd.AddCommand(insightsCmd())
	cmd.AddCommand(trendCmd())

	return cmd
}

func renderGroups(groups []analytics.Group, symbol string) {
	if len(groups) == 0 {
		fmt.Println(cli.InfoStyle.Render("No expenses to analyze yet."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, g := range groups {
		fmt.Fprintf(w, "  %s\t%s\t%.1f%%\n", g.Label, cli.Money(symbol, g.Total), g.Percent)
	}
}

func topCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top [n]",
		Short: "Show the largest expenses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			n := 0
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q: %w", args[0], err)
				}
				n = parsed
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			top := snap.TopExpenses(n)
			if len(top) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses to analyze yet."))
				return nil
			}

			symbol := snap.Currency
			fmt.Println(cli.FormatTitle("Top Expenses"))
			for i, e := range top {
				icon := ""
				if cat, ok := model.CategoryByValue(e.Category); ok {
					icon = cat.Icon + " "
				}
				fmt.Printf("  #%d  %s  %s  %s(%s, %s)\n",
					i+1, e.Title,
					cli.AmountStyle.Render(cli.Money(symbol, e.Amount)),
					icon, e.Category, e.DayKey())
			}
			return nil
		},
	}
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show qualitative spending insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			symbol := snap.Currency

			fmt.Println(cli.FormatTitle("Spending Insights"))

			if day, ok := snap.HighestSpendingDay(); ok {
				fmt.Printf("  📅 Highest spending day: %s (average %s)\n",
					day.Day, cli.Money(symbol, day.Average))
			} else {
				fmt.Println("  📅 Highest spending day: no data")
			}

			if ct, ok := snap.MostUsedCategory(); ok {
				label := ct.Category
				if cat, found := model.CategoryByValue(ct.Category); found {
					label = cat.Label
				}
				fmt.Printf("  🏆 Most used category: %s (%s)\n",
					label, cli.Money(symbol, ct.Total))
			} else {
				fmt.Println("  🏆 Most used category: no data")
			}

			if e, ok := snap.LargestExpense(); ok {
				fmt.Printf("  %s Largest expense: %s (%s)\n",
					cli.MoneyIcon, e.Title, cli.Money(symbol, e.Amount))
			} else {
				fmt.Printf("  %s Largest expense: no data\n", cli.MoneyIcon)
			}

			fmt.Printf("  📱 Daily average: %s per day\n",
				cli.Money(symbol, snap.TotalExpenses()/30))
			return nil
		},
	}
}

func trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show the last three months of spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			symbol := snap.Currency
			points := snap.MonthlyTrend(time.Now())

			var max float64
			for _, p := range points {
				if p.Total > max {
					max = p.Total
				}
			}

			fmt.Println(cli.FormatTitle("Last 3 Months"))
			for _, p := range points {
				width := 0
				if max > 0 {
					width = int(p.Total / max * 20)
				}
				bar := strings.Repeat("█", width)
				fmt.Printf("  %-9s %s %s\n", p.Month, bar, cli.Money(symbol, p.Total))
			}
			return nil
		},
	}
}
