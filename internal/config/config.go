package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile    string        // path to the study-space catalog yaml
	ReloadInterval time.Duration // interval to reload the catalog (default: 24h)

	GCInterval       time.Duration // interval between stale-booking sweeps
	BookingRetention time.Duration // how long past-dated bookings are kept

	// Redis (ledger persistence)
	RedisAddr           string
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt

	// Rate limiting for the booking endpoint
	RateLimitBurst  int
	RateLimitPerMin int
	TrustProxy      bool // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CAMPUS_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CAMPUS_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CAMPUS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CAMPUS_PRETTY_LOG", true),

		// Catalog
		CatalogFile:    getenv("CAMPUS_CATALOG_FILE", "catalog.yaml"),
		ReloadInterval: mustDuration("CAMPUS_RELOAD_INTERVAL", 24*time.Hour),

		// Ledger housekeeping
		GCInterval:       mustDuration("CAMPUS_GC_INTERVAL", 24*time.Hour),
		BookingRetention: mustDuration("CAMPUS_BOOKING_RETENTION", 30*24*time.Hour),

		// Redis settings
		RedisAddr:           getenv("CAMPUS_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("CAMPUS_REDIS_USERNAME", ""),
		RedisPassword:       getenv("CAMPUS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("CAMPUS_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("CAMPUS_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("CAMPUS_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("CAMPUS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("CAMPUS_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("CAMPUS_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("CAMPUS_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("CAMPUS_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("CAMPUS_REDIS_PING_TIMEOUT", 5*time.Second),

		// Rate limiting
		RateLimitBurst:  getenvInt("CAMPUS_RATE_LIMIT_BURST", 5),
		RateLimitPerMin: getenvInt("CAMPUS_RATE_LIMIT_PER_MIN", 30),
		TrustProxy:      mustBool("CAMPUS_TRUST_PROXY", false),
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
