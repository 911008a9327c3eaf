package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/angeloflores/folio/internal/config"
	"github.com/angeloflores/folio/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadContent loads the content file named by cfg, or the built-in page.
func loadContent(cfg *config.Config) (*content.Content, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return c, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := config.NewLogger(cfg.Logging, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}
