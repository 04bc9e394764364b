package config

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = ".bookedai.yml"

// EnvPrefix marks environment variables that override config keys:
// BOOKEDAI_CHECKOUT_URL sets checkout_url.
const EnvPrefix = "BOOKEDAI_"

// Config is the top-level site configuration, corresponding to .bookedai.yml.
type Config struct {
	Port            int    `yaml:"port" koanf:"port"`
	OutputDir       string `yaml:"output_dir" koanf:"output_dir"`
	ContentDir      string `yaml:"content_dir" koanf:"content_dir"`
	BrandName       string `yaml:"brand_name" koanf:"brand_name"`
	CheckoutURL     string `yaml:"checkout_url" koanf:"checkout_url"`
	EmbedKey        string `yaml:"embed_key" koanf:"embed_key"`
	EmbedScriptURL  string `yaml:"embed_script_url" koanf:"embed_script_url"`
	NavOffset       int    `yaml:"nav_offset" koanf:"nav_offset"`
	LogLevel        string `yaml:"log_level" koanf:"log_level"`
	LogFile         string `yaml:"log_file" koanf:"log_file"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	WatchDebounceMS int    `yaml:"watch_debounce_ms" koanf:"watch_debounce_ms"`
}
