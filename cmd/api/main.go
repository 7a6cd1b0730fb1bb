package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/signflow/leadgen-platform/internal/api/router"
	appconfig "github.com/signflow/leadgen-platform/internal/config"
	"github.com/signflow/leadgen-platform/internal/ghl"
	"github.com/signflow/leadgen-platform/internal/leads"
	"github.com/signflow/leadgen-platform/internal/notify"
	"github.com/signflow/leadgen-platform/internal/observability/metrics"
	"github.com/signflow/leadgen-platform/pkg/logging"
)

func main() {
	// Local development convenience; the file is absent in production.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting signflow lead API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Missing CRM credentials are a construction-time failure, not a
	// per-request surprise.
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	crmClient, err := ghl.NewClient(ghl.Config{
		APIKey:     cfg.GHLAPIKey,
		LocationID: cfg.GHLLocationID,
		BaseURL:    cfg.GHLBaseURL,
	}, logger)
	if err != nil {
		logger.Error("failed to build CRM client", "error", err)
		os.Exit(1)
	}

	// Lead notifications are optional; leave the notifier nil when email is
	// not configured.
	var notifier leads.LeadNotifier
	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
	if sender != nil && len(cfg.LeadNotifyEmails) > 0 {
		notifier = notify.NewService(sender, cfg.LeadNotifyEmails, cfg.SiteName, logger)
	}

	leadMetrics := metrics.NewLeadMetrics(nil)

	// Initialize handlers
	leadsHandler := leads.NewHandler(crmClient, notifier, leadMetrics, logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:         logger,
		LeadsHandler:   leadsHandler,
		MetricsHandler: promhttp.Handler(),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
