package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/storefront/pkg/db"
	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/mykafka"
	"github.com/Skotchmaster/storefront/services/cart/internal/config"
	"github.com/Skotchmaster/storefront/services/cart/internal/relay"
	"github.com/Skotchmaster/storefront/services/cart/internal/repo"
)

func main() {
	cfg := config.Load()
	cfg.MustRelay()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName, "component", "outbox-relay")

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseDriver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer func() { _ = db.Close(gdb) }()

	producer, err := mykafka.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}
	defer func() { _ = producer.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := relay.New(&repo.GormRepo{DB: gdb}, producer, cfg.OutboxBatchSize, cfg.OutboxPollInterval, logger)

	logger.Info("relay_starting", "brokers", cfg.KafkaBrokers, "batch_size", cfg.OutboxBatchSize, "interval", cfg.OutboxPollInterval.String())
	if err := r.Run(ctx); err != nil {
		logger.Error("relay_error", "error", err)
	}
	logger.Info("relay_stopped")
}
