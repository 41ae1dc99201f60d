package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/adapters/web"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

var categoriesOutput string

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List the catalog categories with asset counts",
	Long: `List the five catalog categories in display order.

The slug can be passed to 'hub list --category' and to the web UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseOutputFormat(categoriesOutput)
		if err != nil {
			return err
		}
		return printCategories(cmd.OutOrStdout(), format)
	},
}

func init() {
	categoriesCmd.Flags().StringVarP(&categoriesOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

// printCategories renders the category chooser with counts
func printCategories(w io.Writer, format outputFormat) error {
	stats, err := statsService.Execute(getContext())
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	categories := web.NewCategoryResponses(stats)

	return printOutput(w, format, categories, func(w io.Writer) error {
		fmt.Fprintln(w, ui.FormatTitle("Categories"))
		fmt.Fprintln(w)

		table := ui.NewTable([]ui.TableColumn{
			{Header: "#", Width: 2, Align: "right"},
			{Header: "Category", Width: 36, Align: "left", Flex: true},
			{Header: "Slug", Width: 24, Align: "left"},
			{Header: "Assets", Width: 6, Align: "right"},
		})
		if appConfig != nil {
			table.MaxWidth = appConfig.TableWidth
		}

		for i, c := range categories {
			table.AddRow([]string{
				fmt.Sprintf("%d", i+1),
				c.Icon + " " + c.Label,
				c.Slug,
				fmt.Sprintf("%d", c.Count),
			})
		}

		fmt.Fprint(w, table.Render())
		return nil
	})
}
