package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.BrandName != "BookedAI" {
		t.Errorf("expected default brand %q, got %q", "BookedAI", cfg.BrandName)
	}
	if cfg.NavOffset != 80 {
		t.Errorf("expected default nav_offset 80, got %d", cfg.NavOffset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bookedai.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.BrandName = "Acme Booking"
	original.CheckoutURL = "https://example.com/buy"
	original.EmbedKey = ""
	original.NavOffset = 64
	original.AllowAllOrigins = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.BrandName != original.BrandName {
		t.Errorf("brand_name: got %q, want %q", loaded.BrandName, original.BrandName)
	}
	if loaded.CheckoutURL != original.CheckoutURL {
		t.Errorf("checkout_url: got %q, want %q", loaded.CheckoutURL, original.CheckoutURL)
	}
	if loaded.EmbedKey != "" {
		t.Errorf("embed_key: got %q, want empty", loaded.EmbedKey)
	}
	if loaded.NavOffset != original.NavOffset {
		t.Errorf("nav_offset: got %d, want %d", loaded.NavOffset, original.NavOffset)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("BOOKEDAI_PORT", "3000")
	t.Setenv("BOOKEDAI_BRAND_NAME", "Env Brand")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got port %d, want 3000", loaded.Port)
	}
	if loaded.BrandName != "Env Brand" {
		t.Errorf("env override failed: got brand %q", loaded.BrandName)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".bookedai.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	dotenv := "BOOKEDAI_EMBED_KEY=abc123\nBOOKEDAI_NAV_OFFSET=40\nOTHER_VALUE=ignored\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0644); err != nil {
		t.Fatal(err)
	}

	// The process environment wins over .env.
	t.Setenv("BOOKEDAI_NAV_OFFSET", "12")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.EmbedKey != "abc123" {
		t.Errorf("embed_key: got %q, want %q", loaded.EmbedKey, "abc123")
	}
	if loaded.NavOffset != 12 {
		t.Errorf("nav_offset: got %d, want 12", loaded.NavOffset)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Port = 0 }, "port"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "port"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"blank brand", func(c *Config) { c.BrandName = "  " }, "brand_name"},
		{"empty checkout", func(c *Config) { c.CheckoutURL = "" }, "checkout_url"},
		{"relative checkout", func(c *Config) { c.CheckoutURL = "/buy" }, "checkout_url"},
		{"ftp checkout", func(c *Config) { c.CheckoutURL = "ftp://example.com" }, "checkout_url"},
		{"missing script url", func(c *Config) { c.EmbedScriptURL = "" }, "embed_script_url"},
		{"no embed needs no script", func(c *Config) { c.EmbedKey = ""; c.EmbedScriptURL = "" }, ""},
		{"negative nav offset", func(c *Config) { c.NavOffset = -1 }, "nav_offset"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"upper log level", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
		{"negative debounce", func(c *Config) { c.WatchDebounceMS = -5 }, "watch_debounce_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePortText(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{" 443 ", false},
		{"0", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		err := validatePortText(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePortText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestRequireText(t *testing.T) {
	if err := requireText("BookedAI"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := requireText(" \t "); err == nil {
		t.Error("expected error for blank value")
	}
}

func TestDetectContentDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if got := detectContentDir(); got != "" {
		t.Errorf("expected no content dir, got %q", got)
	}

	if err := os.MkdirAll(filepath.Join(dir, "content"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "content", "dataset.yaml"), []byte("stats: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := detectContentDir(); got != "content" {
		t.Errorf("expected %q, got %q", "content", got)
	}
}
