package config

import (
	pkgconfig "github.com/Skotchmaster/storefront/pkg/config"
)

type Config struct {
	ListenAddr string
	AuthURL    string
	CartURL    string
	LogLevel   string
}

func Load() Config {
	base := pkgconfig.Load(".env")

	cfg := Config{
		ListenAddr: pkgconfig.EnvDefault("GATEWAY_ADDR", ":8080"),
		AuthURL:    pkgconfig.EnvDefault("AUTH_URL", ""),
		CartURL:    pkgconfig.EnvDefault("CART_URL", ""),
		LogLevel:   base.LogLevel,
	}
	pkgconfig.MustNonEmpty(cfg.AuthURL, "AUTH_URL")
	pkgconfig.MustNonEmpty(cfg.CartURL, "CART_URL")
	return cfg
}
