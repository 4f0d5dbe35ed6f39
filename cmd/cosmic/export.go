package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmic-tools/cosmic-ledger/internal/cli"
	"github.com/cosmic-tools/cosmic-ledger/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger",
		Long:  `Write the full ledger as a JSON backup document, or the expense list as CSV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()

			var data []byte
			switch format {
			case "json":
				doc := export.NewDocument(
					st.Expenses(), st.Goals(), st.Settings(),
					export.UserInfo{
						Name:  viper.GetString("user.name"),
						Email: viper.GetString("user.email"),
					}, now)
				data, err = doc.MarshalIndent()
				if err != nil {
					return err
				}
			case "csv":
				data = []byte(export.CSV(st.Expenses()))
			default:
				return fmt.Errorf("unknown export format: %s (want json or csv)", format)
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("expense-tracker-%s.%s", now.Format("2006-01-02"), format)
			}
			if path == "-" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to %s", len(st.Expenses()), path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format (json, csv)")
	cmd.Flags().StringVar(&output, "output", "", "output file (default expense-tracker-<date>.<ext>, '-' for stdout)")

	return cmd
}
