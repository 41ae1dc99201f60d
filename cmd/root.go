package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/adapters/opener"
	"github.com/kamal-hamza/content-hub/internal/adapters/repository"
	"github.com/kamal-hamza/content-hub/internal/core/ports"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/config"
	"github.com/kamal-hamza/content-hub/pkg/ui"
	"github.com/kamal-hamza/content-hub/pkg/vault"
)

var (
	// Global vault and configuration
	appVault  *vault.Vault
	appConfig *config.Config

	// Services
	listService  *services.ListService
	statsService *services.StatsService

	// Repositories
	catalogRepo *repository.CatalogRepository

	// System adapters
	linkOpener   ports.LinkOpener
	appClipboard ports.Clipboard

	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hub",
	Short: "HUB - Marketing content hub browser",
	Long: ui.StyleTitle.Render("HUB") + " - Marketing Content Hub\n\n" +
		"Central library for marketing & commercial assets.\n" +
		"Search posters, playbooks and case studies, preview them in place\n" +
		"and open their documents in your browser.",
	PersistentPreRunE: initializeApp,
	RunE:              runDefault,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// runDefault runs the view picked by default_view
func runDefault(cmd *cobra.Command, args []string) error {
	if appConfig != nil && appConfig.DefaultView == "list" {
		return runList(cmd, args)
	}
	return runBrowse(cmd, args)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for version command
	if cmd.Name() == "version" {
		return nil
	}

	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	appVault = v

	cfg, err := config.Load(appVault.ConfigPath)
	if err != nil {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Ignoring config: %v", err)))
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)
	setupLogging(appConfig.LogLevel, verbose)

	repo, err := repository.NewCatalogRepository()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	catalogRepo = repo

	listService = services.NewListService(catalogRepo)
	statsService = services.NewStatsService(catalogRepo)

	linkOpener = opener.NewBrowserOpener(appConfig.Browser)
	appClipboard = opener.NewSystemClipboard()

	return nil
}

// setupLogging routes operational logs to stderr so they never mix with command output
func setupLogging(level string, debug bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
