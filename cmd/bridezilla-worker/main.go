package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"bridezilla/internal/amqp"
	"bridezilla/internal/backend"
	"bridezilla/internal/config"
	applog "bridezilla/internal/log"
	"bridezilla/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the activity worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	// The worker dials the broker itself; keep the backend AMQP-free so a
	// second connection is not held open.
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

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	// Mirroring is for deployments where the API server and the activity
	// feed use separate stores; sharing one store would double-record.
	mirrorFeed := os.Getenv("ACTIVITY_MIRROR_FEED") == "true"
	activityWorker := worker.NewActivityWorker(result.Backend, mirrorFeed)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Consuming vendor activity",
			"exchange", cfg.AMQPExchange,
			"queue", cfg.AMQPQueue,
			"mirror_feed", mirrorFeed)
		err := amqpClient.ConsumeVendorActivity(ctx, func(msg *amqp.VendorActivityMessage) error {
			return activityWorker.HandleActivityMessage(ctx, msg)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("Worker error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
