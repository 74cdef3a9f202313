package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	RedisAddr string
	RedisDB   int
	RedisPass string

	SupplierBase string
	SupplierKey  string
	SupplierRPS  int

	StripeKey string
	Currency  string

	Workers    int
	CacheTTL   time.Duration
	SessionTTL time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		SupplierBase: env("SUPPLIER_BASE_URL", "https://inventory.tripdesk.internal"),
		SupplierKey:  env("SUPPLIER_API_KEY", ""),
		SupplierRPS:  atoi("SUPPLIER_RPS", 10),
		StripeKey:    env("STRIPE_SECRET_KEY", ""),
		Currency:     env("PAYMENT_CURRENCY", "inr"),
		Workers:      atoi("WARM_WORKERS", 4),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		SessionTTL:   time.Duration(atoi("SESSION_TTL_SECONDS", 1800)) * time.Second,
	}
	if c.StripeKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY is empty; checkout will fail")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
