package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kamal-hamza/content-hub/internal/adapters/web"
	"github.com/kamal-hamza/content-hub/pkg/config"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

const envPrefix = "HUB"

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content hub web UI and JSON API",
	Long: `Serve the single-page content hub and its JSON API over HTTP.

Settings are resolved from, highest priority first: flags, HUB_*
environment variables (a .env file in the working directory is loaded),
the config file, then built-in defaults.

Endpoints:
  GET /                       Content hub page (?q=, ?category=, ?preview=)
  GET /api/categories         Categories with counts
  GET /api/assets             Filtered assets (?q=, ?category=)
  GET /api/assets/{id}        One asset
  GET /healthz                Health check

Examples:
  hub serve
  hub serve --addr :9000
  HUB_ADDR=0.0.0.0:8080 hub serve`,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd.Flags())
}

// serveSettings is the resolved configuration of the server
type serveSettings struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	LogLevel        zerolog.Level
}

func addServeFlags(flags *pflag.FlagSet) {
	flags.String("addr", "", "Listen address (default from config)")
	flags.StringSlice("origins", nil, "Allowed CORS origins (default from config)")
	flags.Duration("shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")
	flags.String("log-level", "", "Server log level (default from config)")
}

// loadServeSettings layers flags over HUB_* variables over the config file
func loadServeSettings(flags *pflag.FlagSet, cfg *config.Config) (serveSettings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", cfg.ServeAddr)
	v.SetDefault("origins", cfg.AllowedOrigins)
	v.SetDefault("shutdown-timeout", 10*time.Second)
	v.SetDefault("log-level", cfg.LogLevel)

	if err := v.BindPFlags(flags); err != nil {
		return serveSettings{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return serveSettings{}, fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}

	settings := serveSettings{
		Addr:            v.GetString("addr"),
		AllowedOrigins:  splitOrigins(v.GetStringSlice("origins")),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		LogLevel:        level,
	}

	if settings.Addr == "" {
		return serveSettings{}, errors.New("listen address cannot be empty")
	}
	if settings.ShutdownTimeout <= 0 {
		settings.ShutdownTimeout = 10 * time.Second
	}
	if len(settings.AllowedOrigins) == 0 {
		settings.AllowedOrigins = []string{"*"}
	}

	return settings, nil
}

// splitOrigins accepts both repeated values and a comma separated HUB_ORIGINS
func splitOrigins(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, o := range strings.Split(r, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Ignoring .env file: %v", err)))
	}

	settings, err := loadServeSettings(cmd.Flags(), appConfig)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(settings.LogLevel).
		With().
		Timestamp().
		Str("service", "content-hub").
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(
		settings.Addr,
		listService,
		statsService,
		web.WithLogger(logger),
		web.WithAllowedOrigins(settings.AllowedOrigins),
	)

	fmt.Println(ui.FormatSuccess("Content hub running at http://" + settings.Addr))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))

	return server.Run(ctx, settings.ShutdownTimeout)
}
