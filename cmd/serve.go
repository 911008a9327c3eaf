package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/angeloflores/folio/internal/config"
	"github.com/angeloflores/folio/internal/db"
	"github.com/angeloflores/folio/internal/preferences"
	"github.com/angeloflores/folio/internal/server"
)

var servePort int

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page",
	Long: `Starts an HTTP server that renders the portfolio per request. Each
visitor's theme is resolved on the server from their stored preference,
then the browser's color-scheme hint, then light.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	var prefs *preferences.Store
	if cfg.Theme.Store == config.StoreSQLite {
		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		prefs = preferences.NewStore(database)
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AssetsDir:      cfg.AssetsDir,
		CookieMaxAge:   time.Duration(cfg.Theme.CookieMaxAgeDays) * 24 * time.Hour,
		SecureCookies:  cfg.Theme.SecureCookies,
		RateLimit:      cfg.Server.RateLimit,
		RateBurst:      cfg.Server.RateBurst,
		LiveSync:       cfg.Server.LiveSync,
	}, logger, c, prefs)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "folio %s starting on port %d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Theme store: %s\n", cfg.Theme.Store)
	if prefs != nil {
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DatabasePath())
	}

	// Run returns after in-flight requests drain, before the database closes.
	if err := srv.Run(ctx, shutdownGrace); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Server stopped.")
	return nil
}
