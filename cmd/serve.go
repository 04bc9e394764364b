package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookedai/site/internal/config"
	"github.com/bookedai/site/internal/content"
	"github.com/bookedai/site/internal/livereload"
	"github.com/bookedai/site/internal/logging"
	"github.com/bookedai/site/internal/metrics"
	"github.com/bookedai/site/internal/page"
	"github.com/bookedai/site/internal/server"
	"github.com/bookedai/site/internal/site"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Serves the page with htmx fragments for overlays, FAQ toggles and
section navigation. With --watch, edits under content_dir are reloaded and
pushed to open browsers.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload content on change and refresh open pages")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveWatch && cfg.ContentDir == "" {
		return errors.New("--watch needs content_dir set in the config")
	}

	logger := newLogger(cfg)
	opts := pageOptions(cfg, site.NewBuildID(), serveWatch)

	root, err := buildRoot(cfg, opts)
	if err != nil {
		return err
	}

	m := metrics.New(nil)
	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, logger, m)

	h := page.NewHandler(root, m, logger)
	h.RegisterRoutes(srv.Router())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		hub := livereload.NewHub(logger)
		defer hub.Close()
		srv.Router().Handle(livereload.Path, hub)

		watcher, err := livereload.NewWatcher(cfg.ContentDir, content.Watched,
			time.Duration(cfg.WatchDebounceMS)*time.Millisecond, logger)
		if err != nil {
			return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
		}
		go func() {
			err := watcher.Run(ctx, func() { reload(cfg, opts, h, hub, m, logger) })
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("content watcher stopped", "error", err)
			}
		}()
		logger.Info("watching content", "dir", cfg.ContentDir)
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "bookedai %s serving %s at http://localhost:%d\n", Version, cfg.BrandName, cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// reload rebuilds the page from disk. A broken edit keeps the last good
// page in place.
func reload(cfg *config.Config, opts page.Options, h *page.Handler, hub *livereload.Hub, m *metrics.SiteMetrics, logger *logging.Logger) {
	root, err := buildRoot(cfg, opts)
	m.ObserveReload(err)
	if err != nil {
		logger.Warn("content reload failed, keeping previous page", "error", err)
		return
	}
	h.Swap(root)
	n := hub.Broadcast(livereload.ReloadMessage)
	logger.Info("content reloaded", "clients", n)
}
