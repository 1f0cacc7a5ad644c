package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Catalog CatalogConfig
	Session SessionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FeedConfig holds catalog feed configuration
type FeedConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// CatalogConfig holds the filtering/pagination knobs
type CatalogConfig struct {
	PageSize           int           `mapstructure:"page_size"`
	FacetField         string        `mapstructure:"facet_field"` // "brand" or "category"
	SearchDebounce     time.Duration `mapstructure:"search_debounce"`
	EnableDebugLogging bool          `mapstructure:"enable_debug_logging"`
}

// SessionConfig holds UI session configuration
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ministore/")

	// Environment variable settings
	v.SetEnvPrefix("MINISTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"https://web.telegram.org", "http://localhost:*"})

	// Feed defaults
	v.SetDefault("feed.timeout", "30s")
	v.SetDefault("feed.retry_delay", "2s")

	// Catalog defaults
	v.SetDefault("catalog.page_size", 12)
	v.SetDefault("catalog.facet_field", "brand")
	v.SetDefault("catalog.search_debounce", "300ms")
	v.SetDefault("catalog.enable_debug_logging", false)

	// Session defaults
	v.SetDefault("session.ttl", "30m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Feed.URL == "" {
		return fmt.Errorf("catalog feed URL is required (set MINISTORE_FEED_URL)")
	}

	if config.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog page size must be positive, got: %d", config.Catalog.PageSize)
	}

	if config.Catalog.FacetField != "brand" && config.Catalog.FacetField != "category" {
		return fmt.Errorf("facet field must be 'brand' or 'category', got: %s", config.Catalog.FacetField)
	}

	if config.Catalog.SearchDebounce < 0 {
		return fmt.Errorf("search debounce must not be negative")
	}

	return nil
}
