package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bookedai/site/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bookedai",
	Short: "Serve and build the BookedAI marketing site",
	Long: `bookedai renders the BookedAI one-page marketing site: hero, live
dashboard preview, onboarding form, pricing and FAQ. It serves the page
with htmx-driven overlays and FAQ toggles, or builds it into a directory
of static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
