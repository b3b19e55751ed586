package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER
var storageDrivers = []string{"memory", "sqlite", "postgres", "redis"}

// Config application configuration
type Config struct {
	TelegramToken string
	HTTPAddr      string

	RatesBaseURL string
	RatesTimeout time.Duration // 0 means no timeout

	StorageDriver string
	SQLitePath    string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BankCatalogXLSX string

	LogLevel  string
	LogFormat string
}

// TelegramEnabled reports whether the Telegram channel should run
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != ""
}

// Load reads .env (when present) and the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":3978")
	v.SetDefault("RATES_BASE_URL", "http://rate.am")
	v.SetDefault("RATES_TIMEOUT", "0s")
	v.SetDefault("STORAGE_DRIVER", "memory")
	v.SetDefault("SQLITE_PATH", "data/state.db")
	v.SetDefault("REDIS_DB", "0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TelegramToken:   strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		RatesBaseURL:    strings.TrimRight(v.GetString("RATES_BASE_URL"), "/"),
		StorageDriver:   strings.ToLower(v.GetString("STORAGE_DRIVER")),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		PostgresDSN:     v.GetString("POSTGRES_DSN"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		BankCatalogXLSX: v.GetString("BANK_CATALOG_XLSX"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
	}

	timeout, err := time.ParseDuration(v.GetString("RATES_TIMEOUT"))
	if err != nil || timeout < 0 {
		return nil, fmt.Errorf("RATES_TIMEOUT must be a non-negative duration, got %q", v.GetString("RATES_TIMEOUT"))
	}
	cfg.RatesTimeout = timeout

	db, err := strconv.Atoi(v.GetString("REDIS_DB"))
	if err != nil || db < 0 {
		return nil, fmt.Errorf("REDIS_DB must be a non-negative integer, got %q", v.GetString("REDIS_DB"))
	}
	cfg.RedisDB = db

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RatesBaseURL == "" {
		return fmt.Errorf("RATES_BASE_URL is empty")
	}

	known := false
	for _, d := range storageDrivers {
		if c.StorageDriver == d {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("STORAGE_DRIVER must be one of %s, got %q", strings.Join(storageDrivers, ", "), c.StorageDriver)
	}

	switch c.StorageDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite storage driver")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres storage driver")
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis storage driver")
		}
	}

	return nil
}

// ValidateServe checks that at least one channel can be started
func (c *Config) ValidateServe() error {
	if !c.TelegramEnabled() && c.HTTPAddr == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN or HTTP_ADDR must be set to serve")
	}
	return nil
}
