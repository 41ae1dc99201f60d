package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/content-hub/pkg/config"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the hub configuration file",
	Long: `Manage the YAML configuration file.

Without a subcommand the effective configuration is printed.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), appVault.ConfigPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	RunE:  runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appVault.ConfigPath

		// Ensure it exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Println(ui.FormatWarning("Config file not found at " + path))
			fmt.Println(ui.FormatInfo("Run 'hub config init' to create it"))
			return fmt.Errorf("config file not found at %s", path)
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintln(out, ui.FormatMuted("# "+appVault.ConfigPath))
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := appVault.ConfigPath

	if _, err := os.Stat(path); err == nil && !configForce {
		fmt.Println(ui.FormatWarning("Config already exists at " + path))
		fmt.Println(ui.FormatInfo("Use --force to overwrite it"))
		return nil
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		fmt.Println(ui.FormatError("Failed to write config"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Config written to " + path))
	return nil
}
