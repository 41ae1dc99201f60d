package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

var statsChart bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Summarise the catalog.

Includes:
  - Assets per category
  - How many assets preview an image, open a link or do nothing
  - Distinct tags

With --chart an HTML chart is written to the cache directory and opened.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "Render an HTML chart and open it")
}

func runStats(cmd *cobra.Command, args []string) error {
	stats, err := statsService.Execute(getContext())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.FormatTitle("Catalog Analytics"))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Assets:"), stats.Total)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Previewable:"), stats.Previewable)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Link only:"), stats.Linked)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("No action:"), stats.Inert)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Distinct Tags:"), stats.Tags)
	w.Flush()

	fmt.Fprintln(out)
	renderCategoryBars(out, stats)

	if !statsChart {
		return nil
	}

	if err := appVault.Initialize(); err != nil {
		return err
	}

	path := appVault.ChartPath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := writeStatsChart(f, stats); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatSuccess("Chart written to "+path))

	if err := linkOpener.Open(getContext(), path); err != nil {
		fmt.Fprintln(out, ui.FormatMuted("(Could not open the chart automatically)"))
	}

	return nil
}

// renderCategoryBars prints a horizontal bar per category, zero counts included
func renderCategoryBars(w io.Writer, stats *services.CatalogStats) {
	fmt.Fprintln(w, ui.StyleHeader.Render("Assets per Category"))

	maxCount := 0
	for _, cc := range stats.ByCategory {
		if cc.Count > maxCount {
			maxCount = cc.Count
		}
	}
	barWidth := 20

	for _, cc := range stats.ByCategory {
		length := 0
		if maxCount > 0 {
			length = int(math.Ceil(float64(cc.Count) / float64(maxCount) * float64(barWidth)))
		}

		fmt.Fprintf(w, "%s %-36s %s\n",
			ui.StyleAccent.Render(padRight(strings.Repeat("█", length), barWidth)),
			cc.Category.Icon()+" "+string(cc.Category),
			ui.StyleMuted.Render(fmt.Sprintf("%d", cc.Count)),
		)
	}
}

// writeStatsChart renders a bar chart of categories and a pie chart of click actions
func writeStatsChart(w io.Writer, stats *services.CatalogStats) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Marketing Content Hub"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Assets per Category",
			Subtitle: fmt.Sprintf("%d assets in total", stats.Total),
		}),
	)

	labels := make([]string, 0, len(stats.ByCategory))
	counts := make([]opts.BarData, 0, len(stats.ByCategory))
	for _, cc := range stats.ByCategory {
		labels = append(labels, string(cc.Category))
		counts = append(counts, opts.BarData{Value: cc.Count})
	}
	bar.SetXAxis(labels).AddSeries("Assets", counts)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Click Actions"}),
	)
	pie.AddSeries("Actions", []opts.PieData{
		{Name: "Preview image", Value: stats.Previewable},
		{Name: "Open link", Value: stats.Linked},
		{Name: "None", Value: stats.Inert},
	})

	page := components.NewPage()
	page.AddCharts(bar, pie)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
