package cmd

import (
	"fmt"

	"github.com/bookedai/site/internal/config"
	"github.com/bookedai/site/internal/content"
	"github.com/bookedai/site/internal/logging"
	"github.com/bookedai/site/internal/page"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bookedai init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose forces debug output.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.LogFile)
}

// pageOptions maps config onto page options.
func pageOptions(cfg *config.Config, buildID string, liveReload bool) page.Options {
	return page.Options{
		Brand:          cfg.BrandName,
		CheckoutURL:    cfg.CheckoutURL,
		EmbedKey:       cfg.EmbedKey,
		EmbedScriptURL: cfg.EmbedScriptURL,
		NavOffset:      cfg.NavOffset,
		LiveReload:     liveReload,
		BuildID:        buildID,
	}
}

// buildRoot loads content and renders a page root from it.
func buildRoot(cfg *config.Config, opts page.Options) (*page.Root, error) {
	site, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	root, err := page.New(site, opts)
	if err != nil {
		return nil, fmt.Errorf("building page: %w", err)
	}
	return root, nil
}
