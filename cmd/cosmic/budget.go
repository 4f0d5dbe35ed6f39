package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmic-tools/cosmic-ledger/internal/cli"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the monthly budget",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(showBudgetCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.SetBudget(ctx, amount); err != nil {
				return err
			}

			symbol := st.Settings().Currency
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Monthly budget set to %s", cli.Money(symbol, amount))))
			return nil
		},
	}
}

func showBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			status := snap.BudgetStatus()
			symbol := snap.Currency

			fmt.Println(cli.FormatTitle("Budget Overview"))
			fmt.Printf("  %s\n\n", cli.UsageBar(status, 30))
			fmt.Printf("  Budget:    %s\n", cli.Money(symbol, snap.Budget))
			fmt.Printf("  Spent:     %s\n", cli.Money(symbol, status.Spent))
			fmt.Printf("  Remaining: %s\n", cli.Money(symbol, status.Remaining))
			fmt.Printf("  Usage:     %s\n",
				cli.HealthStyle(status.Health()).Render(fmt.Sprintf("%.1f%% (%s)", status.UsagePercent, status.Health())))
			return nil
		},
	}
}

func currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Manage the display currency",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <symbol>",
		Short: "Set the display currency symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st.SetCurrency(ctx, args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Currency symbol set to %s", args[0])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List common currency symbols",
		Run: func(_ *cobra.Command, _ []string) {
			for _, c := range model.KnownCurrencies() {
				fmt.Printf("  %s  %s\n", c.Symbol, c.Name)
			}
		},
	})

	return cmd
}
