package config

import (
	pkgconfig "github.com/Skotchmaster/storefront/pkg/config"
)

func Load() pkgconfig.Config {
	cfg := pkgconfig.Load(".env")
	if cfg.ServiceName == "" {
		cfg.ServiceName = "auth"
	}

	pkgconfig.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	pkgconfig.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	return cfg
}
