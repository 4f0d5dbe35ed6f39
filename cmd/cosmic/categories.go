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

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category catalog",
		Long:  `Display the fixed expense categories. The catalog is read-only.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Run: func(_ *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Value"),
				cli.TableHeaderStyle.Render("Label"),
				cli.TableHeaderStyle.Render("Color"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 13),
				strings.Repeat("-", 18),
				strings.Repeat("-", 7))

			for _, cat := range model.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.Value, cat.Label, cat.Color)
			}
		},
	})

	return cmd
}
