package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-review-agent/internal/core"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages accepted by --language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for i, l := range core.SupportedLanguages() {
			suffix := ""
			if i == 0 {
				suffix = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\n", l, l.Title(), suffix)
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(languagesCmd)
}
