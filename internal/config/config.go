// Package config loads the application configuration from the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-review-agent/internal/logger"
)

// DefaultReviewAPIURL is used when no review service URL is configured.
const DefaultReviewAPIURL = "http://localhost:8000"

// ServerConfig configures the web front end.
type ServerConfig struct {
	Port string
}

// ReviewConfig configures the connection to the review service.
type ReviewConfig struct {
	APIURL string
	// Timeout bounds a single review request. Zero means no limit.
	Timeout time.Duration
}

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	Review  ReviewConfig
	Logging logger.Config
	Theme   string
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the result.
func LoadConfig() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from the given viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("REVIEW_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("THEME", "cyan")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		Review: ReviewConfig{
			APIURL:  reviewAPIURL(v),
			Timeout: v.GetDuration("REVIEW_TIMEOUT"),
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Theme: v.GetString("THEME"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reviewAPIURL resolves the service URL: REVIEW_API_URL, then the
// NEXT_PUBLIC_API_URL name used by the web deployment, then localhost.
func reviewAPIURL(v *viper.Viper) string {
	for _, key := range []string{"REVIEW_API_URL", "NEXT_PUBLIC_API_URL"} {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return DefaultReviewAPIURL
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Review.APIURL)
	if err != nil {
		return fmt.Errorf("REVIEW_API_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("REVIEW_API_URL must be an absolute http(s) URL, got %q", c.Review.APIURL)
	}
	if c.Review.Timeout < 0 {
		return fmt.Errorf("REVIEW_TIMEOUT must not be negative, got %s", c.Review.Timeout)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must be set")
	}
	return nil
}
