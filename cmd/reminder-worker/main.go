package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"bridezilla/internal/backend"
	"bridezilla/internal/config"
	applog "bridezilla/internal/log"
	"bridezilla/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: applog.ComponentReminder,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	backendCfg.AMQPURL = ""

	result, err := backend.NewFactory(logger.Logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	scanner := services.NewReminderScanner(result.Backend, cfg.ReminderWindowDays)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(cfg.ReminderInterval)
		defer ticker.Stop()

		logger.Info("Starting reminder scans",
			"interval", cfg.ReminderInterval,
			"window_days", cfg.ReminderWindowDays)

		// Run once on startup so a restart never skips an interval.
		runScan(ctx, logger, scanner)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				runScan(ctx, logger, scanner)
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("Reminder worker error", "error", err)
		os.Exit(1)
	}
	logger.Info("Reminder worker stopped gracefully")
}

func runScan(ctx context.Context, logger *applog.Logger, scanner *services.ReminderScanner) {
	upcoming, err := scanner.Scan(ctx)
	if err != nil {
		logger.Error("Reminder scan failed", "error", err)
		return
	}

	for _, p := range upcoming {
		args := []any{
			"vendor_id", p.VendorID,
			"vendor_name", p.VendorName,
			"description", p.Description,
			"amount", p.Amount,
			"currency", p.Currency,
			"due_date", p.DueDate,
		}
		if p.Status == services.StatusOverdue {
			logger.WarnContext(ctx, "Payment overdue", args...)
		} else {
			logger.InfoContext(ctx, "Payment due soon", args...)
		}
	}
	logger.Info("Reminder scan completed", "upcoming", len(upcoming))
}
