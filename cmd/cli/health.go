package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-review-agent/internal/gateway"
)

var (
	healthJSON    bool
	healthTimeout time.Duration
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Shows whether the review service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gw, err := newGateway()
		if err != nil {
			return err
		}

		ctx, cancel := contextWithOptionalTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		start := time.Now()
		status, err := gw.Health(ctx)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "✗ %s unreachable: %s\n", gw.BaseURL(), gateway.UserMessage(err))
			return fmt.Errorf("health check failed: %w", err)
		}

		if healthJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(status)
		}

		successColor.Fprintf(cmd.OutOrStdout(), "✓ %s", status.Status)
		dimColor.Fprintf(cmd.OutOrStdout(), "  %s at %s (%s)\n", status.Service, gw.BaseURL(), time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output status as JSON")
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 5*time.Second, "Maximum time to wait for the service")
	rootCmd.AddCommand(healthCmd)
}
