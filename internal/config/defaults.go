package config

import "github.com/bookedai/site/internal/embed"

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		OutputDir:       "dist",
		BrandName:       "BookedAI",
		CheckoutURL:     "https://buy.stripe.com/9B69AT5WR9cJb6B6lp7ok00",
		EmbedKey:        "ZjaXJ5",
		EmbedScriptURL:  embed.DefaultScriptURL,
		NavOffset:       80,
		LogLevel:        "info",
		WatchDebounceMS: 200,
	}
}
