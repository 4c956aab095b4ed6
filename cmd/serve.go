// cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/showcase/internal/content"
	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/markdown"
	"github.com/Bitlatte/showcase/internal/metrics"
	"github.com/Bitlatte/showcase/internal/server"
	"github.com/Bitlatte/showcase/internal/site"
)

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the showcase and its JSON API",
	Long: `The serve command loads the content collection and starts the web server.
When a content directory is configured it is watched for changes and reloaded
automatically; requests always see either the old or the new collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := appConfig.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}
		return runServer(cmd.Context(), port)
	},
}

func runServer(parent context.Context, port int) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := loadStore()
	if err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}
	m := metrics.New("showcase")
	m.SetContent(store.All())

	runner, err := listing.NewRunner(appConfig.CacheSize, listing.WithObserver(m))
	if err != nil {
		return err
	}
	pages, err := site.NewPages(appConfig.SiteTitle, appConfig.BaseURL, markdown.NewRenderer())
	if err != nil {
		return err
	}

	handler := server.New(store, runner, pages, logger,
		server.WithAllowedOrigins(appConfig.CORS...),
		server.WithMetrics(m),
	).Handler()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	if appConfig.ContentDir != "" {
		onReload := func(snap content.Snapshot) {
			runner.Purge()
			m.Reloaded(snap.Content)
		}
		w, err := content.NewWatcher(appConfig.ContentDir, store, logger, onReload)
		if err != nil {
			logger.Warn("content watching disabled", zap.Error(err))
		} else {
			g.Go(func() error { return w.Run(gCtx) })
		}
	}

	g.Go(func() error {
		logger.Info("starting server",
			zap.String("address", srv.Addr),
			zap.String("contentDir", appConfig.ContentDir),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 3000, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
