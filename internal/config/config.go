package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	RedisAddress     string
	BotToken         string
	WebAppURL        string
	UploadDir        string
	AdminPageSize    int
	NotifyWorkers    int
	NotifyQueueSize  int
	NotifyRetries    int
	SettingsCacheTTL time.Duration
	ShutdownTimeout  time.Duration
	RequireInitData  bool
}

const (
	defaultRunAddress       = ":5000"
	defaultUploadDir        = "public/uploads"
	defaultAdminPageSize    = 10
	defaultNotifyWorkers    = 2
	defaultNotifyQueueSize  = 64
	defaultNotifyRetries    = 3
	defaultSettingsCacheTTL = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		RedisAddress:     getString(lookup, "REDIS_ADDRESS", ""),
		BotToken:         getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		WebAppURL:        getString(lookup, "WEBAPP_URL", ""),
		UploadDir:        getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		AdminPageSize:    getInt(lookup, "ADMIN_PAGE_SIZE", defaultAdminPageSize),
		NotifyWorkers:    getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:  getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyRetries:    getInt(lookup, "NOTIFY_RETRIES", defaultNotifyRetries),
		SettingsCacheTTL: getDuration(lookup, "SETTINGS_CACHE_TTL", defaultSettingsCacheTTL),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RequireInitData:  getBool(lookup, "REQUIRE_INIT_DATA", false),
	}

	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	cacheTTLStr := cfg.SettingsCacheTTL.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for the settings cache")
	fs.StringVar(&cfg.BotToken, "bot-token", cfg.BotToken, "Telegram bot token")
	fs.StringVar(&cfg.WebAppURL, "webapp-url", cfg.WebAppURL, "Public URL of the mini-app frontend")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for proof attachments")
	fs.IntVar(&cfg.AdminPageSize, "admin-page", cfg.AdminPageSize, "Records per admin listing")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Concurrent notification senders")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Pending notification queue size")
	fs.IntVar(&cfg.NotifyRetries, "notify-retries", cfg.NotifyRetries, "Delivery attempts per notification")
	fs.StringVar(&cacheTTLStr, "settings-ttl", cacheTTLStr, "Settings cache TTL")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.RequireInitData, "require-init-data", cfg.RequireInitData, "Require Telegram initData auth on user endpoints")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SettingsCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid settings cache TTL: %w", err)
	}

	if cfg.AdminPageSize <= 0 {
		cfg.AdminPageSize = defaultAdminPageSize
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyRetries <= 0 {
		cfg.NotifyRetries = defaultNotifyRetries
	}

	if cfg.SettingsCacheTTL <= 0 {
		cfg.SettingsCacheTTL = defaultSettingsCacheTTL
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

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
