package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Realtime RealtimeConfig
	Cache    CacheConfig
	Store    StoreConfig
	Log      LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// BackendConfig points at the prediction backend
type BackendConfig struct {
	BaseURL       string
	ProbeInterval time.Duration
}

// RealtimeConfig holds the WebSocket feed configuration
type RealtimeConfig struct {
	URL string
}

// CacheConfig selects the response cache. An empty RedisAddr falls back
// to the in-process cache.
type CacheConfig struct {
	RedisAddr string
	TTL       time.Duration
}

// StoreConfig holds the last-known-good snapshot store configuration
type StoreConfig struct {
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.airdash")

	viper.SetDefault("server.port", 8501)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("backend.baseurl", "http://localhost:8000")
	viper.SetDefault("backend.probeinterval", 30*time.Second)
	viper.SetDefault("realtime.url", "ws://localhost:8000")
	viper.SetDefault("cache.redisaddr", "")
	viper.SetDefault("cache.ttl", time.Minute)
	viper.SetDefault("store.path", "airdash.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetEnvPrefix("AIRDASH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
