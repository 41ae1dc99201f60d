package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open an asset the way the result list does",
	Long: `Activate an asset as if it were clicked in the result list.

Assets with an image are previewed: their detail card is printed.
Assets with only a link have the link opened in your browser, exactly
as stored. Assets with neither do nothing.

Examples:
  hub open playbook-renewal
  hub open etihad-poster`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	asset, err := lookupAsset(args[0])
	if err != nil {
		return err
	}
	return activateAsset(*asset)
}

// activateAsset performs the list-layout activation of an asset
func activateAsset(asset domain.Asset) error {
	activation := services.Activate(services.ViewList, asset)

	switch activation.Kind {
	case services.ActivationPreview:
		fmt.Print(renderAssetDetail(asset))

	case services.ActivationOpenLink:
		if err := linkOpener.Open(getContext(), activation.URL); err != nil {
			fmt.Println(ui.FormatError("Failed to open link: " + activation.URL))
			return err
		}
		fmt.Println(ui.FormatSuccess("Opened " + asset.Title))
		fmt.Println(ui.FormatMuted(activation.URL))

	default:
		fmt.Println(ui.FormatInfo("Nothing to open for " + asset.Title))
	}

	return nil
}
