package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents calendar source and cache configuration
type CalendarConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	CacheFile          string `mapstructure:"cache_file"`
	HTTPTimeout        string `mapstructure:"http_timeout"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify"` // Insecure opt-in: disables TLS verification
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load loads configuration from file.
// With an explicit path the file must exist; in search-path mode a
// missing file is fine since every setting has a default.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.production-calendar")
		v.AddConfigPath("/etc/production-calendar")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.BaseURL != "" &&
		!strings.HasPrefix(c.Calendar.BaseURL, "http://") &&
		!strings.HasPrefix(c.Calendar.BaseURL, "https://") {
		return fmt.Errorf("calendar.base_url must start with http:// or https://, got '%s'", c.Calendar.BaseURL)
	}

	if c.Calendar.HTTPTimeout != "" {
		duration, err := time.ParseDuration(c.Calendar.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("calendar.http_timeout is not a valid duration: %w", err)
		}
		if duration < 0 {
			return fmt.Errorf("calendar.http_timeout must not be negative")
		}
	}

	return nil
}

// GetBaseURL returns the calendar source base URL
func (c *CalendarConfig) GetBaseURL() string {
	if c.BaseURL == "" {
		return "https://www.consultant.ru/law/ref/calendar/proizvodstvennye/"
	}
	return c.BaseURL
}

// GetCacheFile returns the cache file path
func (c *CalendarConfig) GetCacheFile() string {
	if c.CacheFile == "" {
		return "production_calendar_cache.json"
	}
	return c.CacheFile
}

// GetHTTPTimeout returns the HTTP client timeout
func (c *CalendarConfig) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
