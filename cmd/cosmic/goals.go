package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cosmic-tools/cosmic-ledger/internal/cli"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `Create, list, and delete savings goals. Progress tracking lives elsewhere; goals start at zero.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <target>",
		Short: "Add a new goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goal, err := st.AddGoal(ctx, model.GoalDraft{
				Title:  args[0],
				Target: target,
			})
			if err != nil {
				return err
			}

			symbol := st.Settings().Currency
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created goal %q with target %s (ID %s)",
				goal.Title, cli.Money(symbol, goal.Target), goal.ID)))
			return nil
		},
	}
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goals := st.Goals()
			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals yet. Use 'cosmic goals add' to create one."))
				return nil
			}

			symbol := st.Settings().Currency

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Title"),
				cli.TableHeaderStyle.Render("Target"),
				cli.TableHeaderStyle.Render("Progress"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 13),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))

			for _, g := range goals {
				percent := 0.0
				if g.Target > 0 {
					percent = 100 * g.Current / g.Target
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s (%.1f%%)\n",
					g.ID, g.Title,
					cli.Money(symbol, g.Target),
					cli.Money(symbol, g.Current), percent)
			}

			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st.DeleteGoal(ctx, args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted goal %s", args[0])))
			return nil
		},
	}
}
