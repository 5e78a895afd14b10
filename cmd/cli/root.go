package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/code-review-agent/internal/app"
	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/gateway"
	"github.com/sevigo/code-review-agent/internal/logger"
)

var (
	apiURL   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "review-cli",
	Short: "review-cli submits code snippets to the AI Code Review Agent service.",
	Long: `A CLI for the AI Code Review Agent. It sends a single snippet to the
review service and prints the returned review, and can probe the service health.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Review service base URL (env REVIEW_API_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")

	for key, flag := range map[string]string{
		"REVIEW_API_URL": "api-url",
		"LOG_LEVEL":      "log-level",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newGateway loads the configuration and builds the review gateway. Logs go
// to stderr so stdout carries only the review.
func newGateway() (*gateway.Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.Logging
	if logCfg.Output == "" || logCfg.Output == "stdout" {
		logCfg.Output = "stderr"
	}
	w, _, err := logger.OpenOutput(logCfg)
	if err != nil {
		return nil, err
	}
	log := logger.NewLogger(logCfg, w)
	slog.SetDefault(log)

	gw, err := app.NewGateway(cfg, log)
	if err != nil {
		return nil, err
	}
	return gw, nil
}
