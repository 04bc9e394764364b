package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookedai/site/internal/progress"
	"github.com/bookedai/site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into static files",
	Long:  `Prerenders every overlay state of the page, the chart images and assets into the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 0, "port for the local server (overrides config)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	logger := newLogger(cfg)
	buildID := site.NewBuildID()
	root, err := buildRoot(cfg, pageOptions(cfg, buildID, false))
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(root, outputDir)
	reporter := progress.NewReporter()
	reporter.Start(len(generator.Plan()))
	generator.OnFile = func(rel string) {
		logger.Debug("wrote file", "path", rel)
		reporter.Step(rel)
	}

	count, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	reporter.Finish()

	fmt.Printf("Static site built: %s (%d files, build %s)\n", outputDir, count, buildID)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Port
		}
		openBrowser, _ := cmd.Flags().GetBool("open")

		if err := site.Serve(outputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
