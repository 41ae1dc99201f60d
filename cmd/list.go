package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/adapters/web"
	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

var (
	listQuery    string
	listCategory string
	listOutput   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list [query]",
	Short:   "List catalog assets matching a search or category",
	Aliases: []string{"ls"},
	Long: `List catalog assets in a table, or as JSON/YAML.

Without a query or category the category overview is shown instead;
json and yaml print the empty home collection, as GET /api/assets does.
The query is matched literally and case-insensitively against the title,
description and tags.

Examples:
  hub list etihad
  hub list --category playbooks
  hub list --query cargo --category "Marketing Collaterals"
  hub list --query pharma -o json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Search text")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Category label or slug")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(listOutput)
	if err != nil {
		return err
	}

	req := services.ListRequest{Query: listQuery}
	if req.Query == "" && len(args) > 0 {
		req.Query = strings.Join(args, " ")
	}

	if listCategory != "" {
		category, err := domain.ParseCategory(listCategory)
		if err != nil {
			fmt.Println(ui.FormatError("Unknown category: " + listCategory))
			fmt.Println(ui.FormatInfo("Run 'hub categories' to see the available categories"))
			return err
		}
		req.Category = category
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list assets"))
		return err
	}

	out := cmd.OutOrStdout()

	// Home mode shows the chooser, not assets; json/yaml keep the API shape
	if resp.View == services.ViewHome && format == outputTable {
		if err := printCategories(out, format); err != nil {
			return err
		}
		fmt.Fprintln(out, ui.FormatInfo("Pick a category with --category or search with --query"))
		return nil
	}

	return printOutput(out, format, web.NewAssetCollection(req, resp), func(w io.Writer) error {
		renderAssetTable(w, resp)
		return nil
	})
}

func renderAssetTable(w io.Writer, resp *services.ListResponse) {
	fmt.Fprintln(w, ui.FormatTitle(resp.Heading))
	fmt.Fprintln(w)

	if resp.EmptyNotice != "" {
		fmt.Fprintln(w, ui.FormatWarning(resp.EmptyNotice))
		return
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 20, Align: "left"},
		{Header: "Title", Width: 48, Align: "left", Flex: true},
		{Header: "Category", Width: 22, Align: "left", Flex: true},
		{Header: "Type", Width: 8, Align: "left"},
		{Header: "Action", Width: 10, Align: "left"},
	})
	if appConfig != nil {
		table.MaxWidth = appConfig.TableWidth
	}

	for _, a := range resp.Assets {
		table.AddRow([]string{
			a.ID,
			a.Title,
			string(a.Category),
			a.Type,
			services.Activate(resp.View, a).Kind.String(),
		})
	}

	fmt.Fprint(w, table.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.FormatMuted(fmt.Sprintf("Total: %d assets", resp.Total)))
}
