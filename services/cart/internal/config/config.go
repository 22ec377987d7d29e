package config

import (
	"time"

	pkgconfig "github.com/Skotchmaster/storefront/pkg/config"
)

const defaultBatchSize = 100

type Config struct {
	pkgconfig.Config

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
}

func Load() Config {
	base := pkgconfig.Load(".env")
	if base.ServiceName == "" {
		base.ServiceName = "cart"
	}

	cfg := Config{
		Config:             base,
		OutboxPollInterval: pkgconfig.EnvDurationDefault("OUTBOX_POLL_INTERVAL", time.Second),
		OutboxBatchSize:    pkgconfig.EnvIntDefault("OUTBOX_BATCH_SIZE", defaultBatchSize),
	}
	if cfg.OutboxPollInterval <= 0 {
		cfg.OutboxPollInterval = time.Second
	}
	if cfg.OutboxBatchSize <= 0 {
		cfg.OutboxBatchSize = defaultBatchSize
	}
	return cfg
}

// MustServe checks what the HTTP service cannot start without.
func (c Config) MustServe() {
	pkgconfig.MustNonEmpty(c.DatabaseURL, "DATABASE_URL")
	pkgconfig.MustNonEmptyBytes(c.JWTSecret, "JWT_SECRET")
}

// MustRelay checks what the outbox relay cannot start without.
func (c Config) MustRelay() {
	pkgconfig.MustNonEmpty(c.DatabaseURL, "DATABASE_URL")
	pkgconfig.MustNonEmptyList(c.KafkaBrokers, "KAFKA_BROKERS")
}
