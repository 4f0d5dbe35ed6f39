package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cosmic-tools/cosmic-ledger/internal/cli"
	"github.com/cosmic-tools/cosmic-ledger/internal/export"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a ledger backup",
		Long: `Replace the expense collection with the contents of a JSON export
document. Import is destructive: existing expenses are cleared first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			doc, err := export.ParseDocument(raw)
			if err != nil {
				return err
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			bar := progressbar.Default(int64(len(doc.Expenses)), "importing")
			count, err := st.ImportExpenses(ctx, doc.Expenses, func() {
				_ = bar.Add(1)
			})
			if err != nil {
				return err
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses from %s", count, args[0])))
			return nil
		},
	}
}
