package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/code-review-agent/internal/app"
	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/logger"
)

func main() {
	themeFlag := flag.String("theme", "", "UI theme (cyan, matrix, amber, ice, dracula)")
	listThemes := flag.Bool("list-themes", false, "List all available themes")
	rawFlag := flag.Bool("raw", false, "Show the review as plain text instead of rendered markdown")
	apiURL := flag.String("api-url", "", "Review service base URL (overrides REVIEW_API_URL)")
	flag.Parse()

	if *listThemes {
		fmt.Println("Available themes:")
		for _, theme := range ListThemes() {
			fmt.Printf("  - %s\n", theme)
		}
		os.Exit(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.Review.APIURL = *apiURL
	}

	// The alt screen owns the terminal, so logs go to a file.
	logCfg := cfg.Logging
	if logCfg.Output != "discard" {
		logCfg.Output = "file"
	}
	logWriter, closeLog, err := logger.OpenOutput(logCfg)
	if err != nil {
		fmt.Printf("Failed to open log output: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log := logger.NewLogger(logCfg, logWriter)

	theme := ThemeName(*themeFlag)
	if theme == "" {
		theme = ThemeName(cfg.Theme)
	}
	if !isValidTheme(theme) {
		fmt.Printf("Invalid theme '%s'. Use --list-themes to see available options.\n", theme)
		os.Exit(1)
	}

	gw, err := app.NewGateway(cfg, log)
	if err != nil {
		fmt.Printf("Failed to configure review service: %v\n", err)
		os.Exit(1)
	}

	log.Info("Code Review Agent terminal starting up", "review_api_url", gw.BaseURL())
	p := tea.NewProgram(initialModel(gw, theme, *rawFlag, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("error running program", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("Code Review Agent terminal shut down successfully")
}
