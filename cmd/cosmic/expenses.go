package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cosmic-tools/cosmic-ledger/internal/analytics"
	"github.com/cosmic-tools/cosmic-ledger/internal/cli"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func addCmd() *cobra.Command {
	var (
		category string
		dateArg  string
	)

	cmd := &cobra.Command{
		Use:   "add <title> <amount>",
		Short: "Record a new expense",
		Long:  `Record a spending event with a title, amount, category, and date.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			date, err := parseDate(dateArg)
			if err != nil {
				return err
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expense, err := st.AddExpense(ctx, model.ExpenseDraft{
				Title:    args[0],
				Amount:   amount,
				Category: category,
				Date:     date,
			})
			if err != nil {
				return err
			}

			symbol := st.Settings().Currency
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %q: %s (%s, ID %s)",
				expense.Title, cli.Money(symbol, expense.Amount), expense.Category, expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "food", "expense category")
	cmd.Flags().StringVar(&dateArg, "date", "", "expense date (YYYY-MM-DD, default today)")

	return cmd
}

func listCmd() *cobra.Command {
	var (
		category string
		search   string
		sortKey  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long:  `Display recorded expenses, optionally filtered by category or title and re-sorted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := analytics.SortExpenses(
				analytics.FilterExpenses(st.Expenses(), analytics.FilterOptions{
					Category: category,
					Search:   search,
				}),
				analytics.SortKey(sortKey),
			)

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found. Use 'cosmic add' to record one."))
				return nil
			}

			symbol := st.Settings().Currency

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Title"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 13),
				strings.Repeat("-", 10),
				strings.Repeat("-", 24),
				strings.Repeat("-", 13),
				strings.Repeat("-", 10))

			for _, e := range expenses {
				icon := ""
				if cat, ok := model.CategoryByValue(e.Category); ok {
					icon = cat.Icon + " "
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\t%s\n",
					e.ID, e.DayKey(), e.Title, icon, e.Category, cli.Money(symbol, e.Amount))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "all", "filter by category (or 'all')")
	cmd.Flags().StringVar(&search, "search", "", "filter by title substring (case-insensitive)")
	cmd.Flags().StringVar(&sortKey, "sort", "date", "sort order (date, amount, title)")

	return cmd
}

func editCmd() *cobra.Command {
	var (
		title    string
		amount   string
		category string
		dateArg  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an expense",
		Long:  `Update fields of an existing expense. Unset flags keep their current values.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if title == "" && amount == "" && category == "" && dateArg == "" {
				return fmt.Errorf("must specify at least one of --title, --amount, --category, --date")
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expense, err := st.Expense(args[0])
			if err != nil {
				return err
			}

			if title != "" {
				expense.Title = title
			}
			if amount != "" {
				parsed, err := parseAmount(amount)
				if err != nil {
					return err
				}
				expense.Amount = parsed
			}
			if category != "" {
				expense.Category = category
			}
			if dateArg != "" {
				date, err := parseDate(dateArg)
				if err != nil {
					return err
				}
				expense.Date = date
			}

			updated, err := st.UpdateExpense(ctx, expense)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense %s", updated.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&dateArg, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long:  `Remove an expense permanently. Deleting an unknown ID is not an error.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st.DeleteExpense(ctx, args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %s", args[0])))
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all expenses",
		Long:  `Empty the expense collection. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			count := len(st.Expenses())
			if count == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to clear."))
				return nil
			}

			if !force {
				fmt.Printf("Are you sure you want to delete all %d expenses? (y/N): ", count)
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Clear cancelled.")
					return nil
				}
			}

			st.ClearExpenses(ctx)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cleared %d expenses", count)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
