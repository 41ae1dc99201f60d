package cmd

import (
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

var (
	findCategory string
	findTag      string
	findCopy     bool
	findOpen     bool
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Pick an asset with an interactive fuzzy finder",
	Long: `Pick an asset from an interactive fuzzy finder with a preview window.

A query narrows the candidates with the same literal search as 'hub list'
before the finder opens. --tag keeps only assets carrying that tag
(case-insensitive).

Examples:
  hub find
  hub find cargo --category playbooks --open
  hub find --tag pharma
  hub find etihad --copy`,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findCategory, "category", "c", "", "Category label or slug")
	findCmd.Flags().StringVarP(&findTag, "tag", "t", "", "Only assets with this tag")
	findCmd.Flags().BoolVar(&findCopy, "copy", false, "Copy the asset URL to the clipboard")
	findCmd.Flags().BoolVar(&findOpen, "open", false, "Open the asset after picking it")
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var category domain.Category
	if findCategory != "" {
		c, err := domain.ParseCategory(findCategory)
		if err != nil {
			fmt.Println(ui.FormatError("Unknown category: " + findCategory))
			return err
		}
		category = c
	}

	catalog, err := listService.Catalog(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load catalog"))
		return err
	}

	candidates := findCandidates(catalog, strings.Join(args, " "), category, findTag)
	if len(candidates) == 0 {
		fmt.Println(ui.FormatWarning(services.EmptyNotice))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			a := candidates[i]
			return fmt.Sprintf("%s  [%s]  %s", a.Title, a.Category, a.TagsString())
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return renderAssetDetail(candidates[i])
		}),
		fuzzyfinder.WithPromptString("hub> "),
	)
	if err != nil {
		fmt.Println(ui.FormatInfo("Selection cancelled."))
		return nil
	}

	selected := candidates[idx]

	if findOpen {
		if err := activateAsset(selected); err != nil {
			return err
		}
	} else {
		fmt.Print(renderAssetDetail(selected))
	}

	if findCopy {
		url := selected.Action().URL
		switch {
		case url == "":
			fmt.Println(ui.FormatMuted("(Nothing to copy)"))
		case appClipboard.WriteAll(url) != nil:
			fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
		default:
			fmt.Println(ui.FormatSuccess("Copied " + url))
		}
	}

	return nil
}

// findCandidates applies the catalog filter, then keeps assets tagged tag
func findCandidates(catalog []domain.Asset, query string, category domain.Category, tag string) []domain.Asset {
	matches := services.Filter(catalog, query, category)
	if tag == "" {
		return matches
	}

	tagged := matches[:0]
	for _, a := range matches {
		if a.HasTag(tag) {
			tagged = append(tagged, a)
		}
	}
	return tagged
}
