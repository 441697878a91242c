package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	GeocoderAddress string
	GeocoderCountry string
	ShopLat         float64
	ShopLon         float64
	BrokerURL       string
	EventQueue      string
	SessionSecret   string
	SessionTTL      time.Duration
	NotifyInterval  time.Duration
	NotifyBatch     int
	WorkerPoolSize  int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultGeocoderAddress = "https://nominatim.openstreetmap.org"
	defaultGeocoderCountry = "vn"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 72 * time.Hour
	defaultNotifyInterval  = 5 * time.Second
	defaultNotifyBatch     = 32
	defaultWorkerPoolSize  = 4
	defaultShutdownTimeout = 10 * time.Second
	defaultEventQueue      = "shopmart.notifications"

	// Shop origin used for distance-based shipping fees.
	defaultShopLat = 20.9626
	defaultShopLon = 105.7460
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		GeocoderAddress: getString(lookup, "GEOCODER_ADDRESS", defaultGeocoderAddress),
		GeocoderCountry: getString(lookup, "GEOCODER_COUNTRY", defaultGeocoderCountry),
		ShopLat:         getFloat(lookup, "SHOP_LAT", defaultShopLat),
		ShopLon:         getFloat(lookup, "SHOP_LON", defaultShopLon),
		BrokerURL:       getString(lookup, "BROKER_URL", ""),
		EventQueue:      getString(lookup, "EVENT_QUEUE", defaultEventQueue),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		NotifyInterval:  getDuration(lookup, "NOTIFY_POLL_INTERVAL", defaultNotifyInterval),
		NotifyBatch:     getInt(lookup, "NOTIFY_BATCH", defaultNotifyBatch),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("shopmart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		notifyIntervalStr  = cfg.NotifyInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.GeocoderAddress, "g", cfg.GeocoderAddress, "Geocoding service base URL")
	fs.StringVar(&cfg.BrokerURL, "b", cfg.BrokerURL, "AMQP broker URL (empty disables event publishing)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent notification workers")
	fs.StringVar(&notifyIntervalStr, "notify-interval", notifyIntervalStr, "Interval between notification outbox polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.NotifyBatch, "notify-batch", cfg.NotifyBatch, "Maximum notifications per outbox poll")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyInterval, err = time.ParseDuration(notifyIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid notify interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.NotifyBatch <= 0 {
		cfg.NotifyBatch = defaultNotifyBatch
	}

	if cfg.NotifyInterval <= 0 {
		cfg.NotifyInterval = defaultNotifyInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.GeocoderAddress == "" {
		return nil, fmt.Errorf("geocoder address must be provided")
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

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
