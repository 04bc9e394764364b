package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// contentMarkers are directories checked, in order, for a dataset.yaml
// override when suggesting a content directory.
var contentMarkers = []string{"content", "site", "."}

// detectContentDir returns the first directory that holds a dataset.yaml.
func detectContentDir() string {
	for _, dir := range contentMarkers {
		if _, err := os.Stat(filepath.Join(dir, "dataset.yaml")); err == nil {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to bookedai! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	if dir := detectContentDir(); dir != "" {
		fmt.Printf("Found content overrides in %s\n\n", dir)
		cfg.ContentDir = dir
	}

	// 1. Brand.
	brandPrompt := promptui.Prompt{
		Label:    "Brand name",
		Default:  cfg.BrandName,
		Validate: requireText,
	}
	brand, err := brandPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("brand name: %w", err)
	}
	cfg.BrandName = brand

	// 2. Checkout link.
	checkoutPrompt := promptui.Prompt{
		Label:    "Checkout URL",
		Default:  cfg.CheckoutURL,
		Validate: validateHTTPURL,
	}
	checkout, err := checkoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("checkout url: %w", err)
	}
	cfg.CheckoutURL = checkout

	// 3. Onboarding form.
	embedPrompt := promptui.Prompt{
		Label:   "Onboarding form key (blank to disable the form)",
		Default: cfg.EmbedKey,
	}
	key, err := embedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("embed key: %w", err)
	}
	cfg.EmbedKey = key

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for bookedai serve",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePortText,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:    "Output directory for bookedai build",
		Default:  cfg.OutputDir,
		Validate: requireText,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 6. Log level.
	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: LogLevels,
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level selection: %w", err)
	}
	cfg.LogLevel = level

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func requireText(s string) error {
	if trimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func validatePortText(s string) error {
	port, err := strconv.Atoi(trimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return validatePort(port)
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
