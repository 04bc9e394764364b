package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then a .env file next
// to it, then environment variable overrides (BOOKEDAI_*). Later sources win.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// .env entries fill in for variables the environment does not set.
	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(dotenv); err == nil {
		vars, err := godotenv.Read(dotenv)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dotenv, err)
		}
		for name, value := range vars {
			if !strings.HasPrefix(name, EnvPrefix) {
				continue
			}
			if _, set := os.LookupEnv(name); set {
				continue
			}
			if err := k.Set(envKey(name), value); err != nil {
				return nil, fmt.Errorf("applying %s: %w", name, err)
			}
		}
	}

	// Overlay environment variables: BOOKEDAI_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return err
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if strings.TrimSpace(c.BrandName) == "" {
		return fmt.Errorf("brand_name is required")
	}

	if err := validateHTTPURL(c.CheckoutURL); err != nil {
		return fmt.Errorf("checkout_url: %w", err)
	}

	if c.EmbedKey != "" {
		if err := validateHTTPURL(c.EmbedScriptURL); err != nil {
			return fmt.Errorf("embed_script_url: %w", err)
		}
	}

	if c.NavOffset < 0 {
		return fmt.Errorf("nav_offset must be non-negative")
	}

	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}

	if c.WatchDebounceMS < 0 {
		return fmt.Errorf("watch_debounce_ms must be non-negative")
	}

	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", port)
	}
	return nil
}

func validateHTTPURL(raw string) error {
	if raw == "" {
		return errors.New("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q must be an absolute http(s) URL", raw)
	}
	return nil
}
