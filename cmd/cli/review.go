package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/form"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	reviewLanguage string
	reviewOutput   string
	reviewTimeout  time.Duration
	verbose        bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [file|-]",
	Short: "Submit a code snippet for review",
	Long: `Submit a single code snippet to the review service and print the review.

The snippet is read from the given file, or from stdin when the argument is
"-" or omitted. With --output json or yaml the whole service response is
printed instead of the review text.

Examples:
  review-cli review main.py
  cat Main.java | review-cli review --language java
  review-cli review --output yaml util.ts --language typescript`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseReviewOptions(reviewLanguage, reviewOutput)
		if err != nil {
			return err
		}

		code, err := readCode(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		gw, err := newGateway()
		if err != nil {
			return err
		}
		if verbose {
			titleColor.Fprintln(cmd.ErrOrStderr(), "AI Code Review Agent")
			dimColor.Fprintf(cmd.ErrOrStderr(), "   Service:  %s\n   Language: %s\n\n", gw.BaseURL(), opts.language.Title())
		}

		ctx, cancel := contextWithOptionalTimeout(cmd.Context(), reviewTimeout)
		defer cancel()
		return runReview(ctx, gw, code, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&reviewLanguage, "language", "l", core.DefaultLanguage().String(), "Language of the snippet (see 'review-cli languages')")
	reviewCmd.Flags().StringVarP(&reviewOutput, "output", "o", outputText, "Output format: text, json or yaml")
	reviewCmd.Flags().DurationVar(&reviewTimeout, "timeout", 0, "Abort the request after this long (0 waits indefinitely)")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print request details and timing to stderr")
	rootCmd.AddCommand(reviewCmd)
}

type reviewOptions struct {
	language core.Language
	output   string
}

func parseReviewOptions(language, output string) (reviewOptions, error) {
	lang, err := core.ParseLanguage(language)
	if err != nil {
		return reviewOptions{}, err
	}
	switch output {
	case outputText, outputJSON, outputYAML:
	default:
		return reviewOptions{}, fmt.Errorf("unsupported output format %q (want text, json or yaml)", output)
	}
	return reviewOptions{language: lang, output: output}, nil
}

// readCode returns the snippet from the file named in args, or from in.
func readCode(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read code from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read code file: %w", err)
	}
	return string(data), nil
}

// runReview drives one submission through the form controller and prints the
// outcome. Validation and service errors are reported on errOut and returned.
func runReview(ctx context.Context, gw core.ReviewGateway, code string, opts reviewOptions, out, errOut io.Writer) error {
	ctrl := form.NewController()
	ctrl.SetLanguage(opts.language)
	ctrl.SetCode(code)

	start := time.Now()
	if err := ctrl.Submit(ctx, gw); err != nil {
		if errors.Is(err, form.ErrEmptyCode) {
			errorColor.Fprintf(errOut, "✗ %s\n", ctrl.Error())
		}
		return err
	}
	if msg := ctrl.Error(); msg != "" {
		errorColor.Fprintf(errOut, "✗ %s\n", msg)
		return errors.New(msg)
	}
	if verbose {
		successColor.Fprintf(errOut, "✓ Review received (%s)\n\n", time.Since(start).Round(time.Millisecond))
	}
	return writeResult(out, ctrl, opts.output)
}

func writeResult(w io.Writer, ctrl *form.Controller, output string) error {
	result := ctrl.Result()
	switch output {
	case outputJSON:
		_, err := fmt.Fprintln(w, result.Dump())
		return err
	case outputYAML:
		var doc any
		if err := json.Unmarshal(result.Raw(), &doc); err != nil {
			return fmt.Errorf("failed to decode review response: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode review as YAML: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, ctrl.Display())
		return err
	}
}

func contextWithOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
