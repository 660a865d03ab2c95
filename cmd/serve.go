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

	"github.com/ziadkadry99/ffsite/internal/server"
	"github.com/ziadkadry99/ffsite/internal/site"
	"github.com/ziadkadry99/ffsite/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live preview server",
	Long: `Serves the rendered site from memory together with a JSON API over the
catalog. When the content comes from a local directory, changes are picked
up automatically and open browser tabs reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", true, "reload when content files change (content_dir only)")
	serveCmd.Flags().Bool("allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	watch = watch && cfg.ContentDir != ""
	allowAll, _ := cmd.Flags().GetBool("allow-all")
	logger := newLogger(cfg)

	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	load := func(ctx context.Context) *site.Snapshot {
		return loadSnapshot(ctx, cfg, src, logger, nil)
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		StaticDir:  cfg.StaticDir,
		ToolName:   cfg.ToolName,
		PageSize:   cfg.PageSize,
		AllowAll:   allowAll,
		LiveReload: watch,
	}, load, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.Reload(ctx)

	if watch {
		w, err := watcher.New(watcher.Config{Root: cfg.ContentDir, Logger: logger}, func(path string) {
			logger.Info("content changed, reloading", "path", path)
			srv.Reload(ctx)
		})
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
		}
		defer w.Stop()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d/", cfg.Port)
	fmt.Fprintf(os.Stderr, "ffsite %s previewing %s at %s\n", Version, src.Location(), url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go func() {
			time.Sleep(300 * time.Millisecond)
			server.OpenBrowser(url)
		}()
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
