package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Storefront StorefrontConfig
	FakeStore  FakeStoreConfig
	Amazon     AmazonConfig
	Cache      CacheConfig
	Shipping   ShippingConfig
	RateLimit  RateLimitConfig
	LLM        LLMConfig
	Search     SearchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StorefrontConfig holds the primary store API configuration. An empty
// base URL disables the provider.
type StorefrontConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	AccessToken string `mapstructure:"access_token"`
}

// FakeStoreConfig holds the FakeStore marketplace configuration
type FakeStoreConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// AmazonConfig holds the Amazon marketplace search configuration. The
// provider stays disabled until an API key is supplied.
type AmazonConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ShippingConfig holds the free-shipping nudge parameters
type ShippingConfig struct {
	FreeThreshold float64 `mapstructure:"free_threshold"`
	NudgeWindow   float64 `mapstructure:"nudge_window"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// LLMConfig holds the text-generation service configuration. An empty API
// key disables conversational recommendations.
type LLMConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// SearchConfig holds catalog search behavior
type SearchConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stylecart/")

	// Environment variable settings
	v.SetEnvPrefix("STYLECART")
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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Provider defaults: the storefront and amazon providers stay disabled
	// until configured; fakestore works out of the box
	v.SetDefault("fakestore.base_url", "https://fakestoreapi.com")

	// Cache defaults
	v.SetDefault("cache.ttl", "15m")

	// Shipping nudge defaults
	v.SetDefault("shipping.free_threshold", 2000)
	v.SetDefault("shipping.nudge_window", 250)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// LLM defaults
	v.SetDefault("llm.base_url", "https://api.openai.com")
	v.SetDefault("llm.model", "gpt-4o-mini")

	// Search defaults
	v.SetDefault("search.default_limit", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Shipping.FreeThreshold <= 0 {
		return fmt.Errorf("shipping free threshold must be positive, got: %v", config.Shipping.FreeThreshold)
	}

	if config.Shipping.NudgeWindow <= 0 {
		return fmt.Errorf("shipping nudge window must be positive, got: %v", config.Shipping.NudgeWindow)
	}

	if config.Search.DefaultLimit <= 0 {
		return fmt.Errorf("search default limit must be positive, got: %d", config.Search.DefaultLimit)
	}

	if config.Amazon.APIKey != "" && config.Amazon.BaseURL == "" {
		return fmt.Errorf("amazon base URL is required when an API key is set")
	}

	return nil
}
