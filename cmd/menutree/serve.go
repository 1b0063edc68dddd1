package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/menutree"
	"github.com/aretw0/menutree/internal/presentation/tui"
	"github.com/aretw0/menutree/internal/sanitize"
	httpAdapter "github.com/aretw0/menutree/pkg/adapters/http"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/observability"
	"github.com/aretw0/menutree/pkg/session"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP editing server",
	Long: `Starts menutree as an HTTP server. Each session holds one menu tree edited
through the JSON API; exports are downloaded or published to the configured sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		if quiet, _ := cmd.Flags().GetBool("no-banner"); !quiet {
			tui.PrintBanner(cmd.ErrOrStderr(), menutree.Version)
		}

		sink, closeSink, err := newSink(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeSink(); err != nil {
				logger.Warn("failed to close export sink", "err", err)
			}
		}()

		metrics := observability.New()
		sessions := session.NewManager(
			session.WithLogger(logger),
			session.WithEditorOptions(editor.WithHooks(metrics.Hooks())),
			session.WithCountHook(func(n int) { metrics.Sessions.Set(float64(n)) }),
		)
		exporter := export.NewExporter(
			export.WithLogger(logger),
			export.WithExportHook(metrics.ExportHook),
		)

		handler, err := httpAdapter.NewHandler(sessions,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithExporter(exporter),
			httpAdapter.WithSink(sink),
			httpAdapter.WithSanitizer(sanitize.New(cfg.Input.MaxSize)),
			httpAdapter.WithMetricsHandler(metrics.Handler()),
			httpAdapter.WithRequestValidation(cfg.HTTP.Validate),
			httpAdapter.WithVersion(menutree.Version),
		)
		if err != nil {
			return fmt.Errorf("failed to build handler: %w", err)
		}

		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.Session.Idle > 0 {
			go pruneSessions(ctx, sessions, cfg.Session.Idle, logger)
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("menutree server listening", "address", srv.Addr, "sink", cfg.Export.Sink, "validate", cfg.HTTP.Validate)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
			logger.Info("shutting down server")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("menutree server stopped")
			return nil
		}
	},
}

// pruneSessions drops sessions idle for longer than idle until ctx is done.
func pruneSessions(ctx context.Context, sessions *session.Manager, idle time.Duration, logger *slog.Logger) {
	interval := idle / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Prune(ctx, idle); n > 0 {
				logger.Debug("pruned idle sessions", "count", n)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := serveCmd.Flags()
	f.StringP("http-addr", "a", ":8080", "Address to listen on")
	f.Bool("http-validate", true, "Validate requests against the OpenAPI document")
	addSinkFlags(f)
	f.Duration("session-idle", 2*time.Hour, "Drop sessions idle for longer than this (0 disables)")
	f.Bool("no-banner", false, "Do not print the startup banner")
}
