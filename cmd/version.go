package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/pkg/ui"
)

// Version information - these can be set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  `Display the current version of hub along with build information.`,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.StyleTitle.Render("HUB")+" - Marketing Content Hub")
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderKeyValue("Version", Version))
	fmt.Fprintln(out, ui.RenderKeyValue("Commit", GitCommit))
	fmt.Fprintln(out, ui.RenderKeyValue("Build Date", BuildDate))
	fmt.Fprintln(out, ui.RenderKeyValue("Go", runtime.Version()))
}
