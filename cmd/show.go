package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/adapters/repository"
	"github.com/kamal-hamza/content-hub/internal/adapters/web"
	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

var showOutput string

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the details of an asset",
	Long: `Show an asset's details and what activating it does.

Examples:
  hub show etihad-poster
  hub show playbook-renewal -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "table", "Output format (table, json, yaml)")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(showOutput)
	if err != nil {
		return err
	}

	asset, err := lookupAsset(args[0])
	if err != nil {
		return err
	}

	return printOutput(cmd.OutOrStdout(), format, web.NewAssetResponse(*asset, services.ViewList), func(w io.Writer) error {
		fmt.Fprint(w, renderAssetDetail(*asset))
		return nil
	})
}

// lookupAsset fetches an asset by id, printing a hint when it does not exist
func lookupAsset(id string) (*domain.Asset, error) {
	asset, err := listService.Get(getContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			fmt.Println(ui.FormatError("Asset not found: " + id))
			fmt.Println(ui.FormatInfo("Run 'hub find' or 'hub list <query>' to look up asset ids"))
		}
		return nil, err
	}
	return asset, nil
}

// renderAssetDetail renders the detail card used by show, open and find
func renderAssetDetail(a domain.Asset) string {
	var s strings.Builder

	s.WriteString(ui.FormatTitle(a.Title))
	s.WriteString("\n\n")
	s.WriteString(ui.RenderKeyValue("ID", a.ID) + "\n")
	s.WriteString(ui.RenderKeyValue("Category", a.Category.Icon()+" "+string(a.Category)) + "\n")
	s.WriteString(ui.RenderKeyValue("Type", a.Type) + "\n")
	s.WriteString(ui.RenderKeyValue("Tags", a.TagsString()) + "\n")

	if a.ImageURL != "" {
		s.WriteString(ui.RenderKeyValue("Image", a.ImageURL) + "\n")
	}
	if a.Link != "" {
		s.WriteString(ui.RenderKeyValue("Link", a.Link) + "\n")
	}

	s.WriteString(ui.RenderKeyValue("Action", describeAction(a)) + "\n")

	if a.Description != "" {
		s.WriteString("\n")
		s.WriteString(a.Description)
		s.WriteString("\n")
	}

	return s.String()
}

func describeAction(a domain.Asset) string {
	switch a.Action().Kind {
	case domain.ActionPreview:
		return ui.IconImage + " preview image"
	case domain.ActionLink:
		return ui.IconLink + " open link"
	default:
		return ui.FormatMuted("none")
	}
}
