package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	TokenSecret string
	TokenTTL    time.Duration

	RedisAddress     string
	DiscountCacheTTL time.Duration

	KafkaBrokers    []string
	KafkaOrderTopic string

	NotifierAddress string

	PendingOrderTTL time.Duration
	ReapInterval    time.Duration
	ReapBatchSize   int
	WorkerPoolSize  int

	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultTokenSecret      = "change-me-in-production"
	defaultTokenTTL         = 24 * time.Hour
	defaultDiscountCacheTTL = time.Minute
	defaultKafkaOrderTopic  = "storemart.orders"
	defaultPendingOrderTTL  = 24 * time.Hour
	defaultReapInterval     = time.Minute
	defaultReapBatchSize    = 32
	defaultWorkerPoolSize   = 4
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		TokenSecret:      getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TokenTTL:         getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		RedisAddress:     getString(lookup, "REDIS_ADDRESS", ""),
		DiscountCacheTTL: getDuration(lookup, "DISCOUNT_CACHE_TTL", defaultDiscountCacheTTL),
		KafkaOrderTopic:  getString(lookup, "KAFKA_ORDER_TOPIC", defaultKafkaOrderTopic),
		NotifierAddress:  getString(lookup, "NOTIFIER_ADDRESS", ""),
		PendingOrderTTL:  getDuration(lookup, "PENDING_ORDER_TTL", defaultPendingOrderTTL),
		ReapInterval:     getDuration(lookup, "REAP_INTERVAL", defaultReapInterval),
		ReapBatchSize:    getInt(lookup, "REAP_BATCH_SIZE", defaultReapBatchSize),
		WorkerPoolSize:   getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	brokers := getString(lookup, "KAFKA_BROKERS", "")

	fs := flag.NewFlagSet("storemart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pendingTTLStr      = cfg.PendingOrderTTL.String()
		reapIntervalStr    = cfg.ReapInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the discount catalog cache (empty disables)")
	fs.StringVar(&brokers, "kafka-brokers", brokers, "Comma-separated Kafka brokers for order events (empty disables)")
	fs.StringVar(&cfg.KafkaOrderTopic, "kafka-topic", cfg.KafkaOrderTopic, "Kafka topic for order events")
	fs.StringVar(&cfg.NotifierAddress, "notifier", cfg.NotifierAddress, "Notification service base URL (empty disables)")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Age after which unpaid pending orders are cancelled")
	fs.StringVar(&reapIntervalStr, "reap-interval", reapIntervalStr, "Interval between reaper sweeps")
	fs.IntVar(&cfg.ReapBatchSize, "reap-batch", cfg.ReapBatchSize, "Maximum orders per reaper sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent reaper workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PendingOrderTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending order ttl: %w", err)
	}

	if cfg.ReapInterval, err = time.ParseDuration(reapIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reap interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	if brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.DiscountCacheTTL <= 0 {
		cfg.DiscountCacheTTL = defaultDiscountCacheTTL
	}

	if cfg.PendingOrderTTL <= 0 {
		cfg.PendingOrderTTL = defaultPendingOrderTTL
	}

	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = defaultReapInterval
	}

	if cfg.ReapBatchSize <= 0 {
		cfg.ReapBatchSize = defaultReapBatchSize
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
