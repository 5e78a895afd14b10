package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app            lipgloss.Style
	title          lipgloss.Style
	subtitle       lipgloss.Style
	label          lipgloss.Style
	labelFocused   lipgloss.Style
	language       lipgloss.Style
	languageActive lipgloss.Style
	errorBox       lipgloss.Style
	resultHeader   lipgloss.Style
	resultPanel    lipgloss.Style
	button         lipgloss.Style
	buttonDisabled lipgloss.Style
	inactive       lipgloss.Style
	success        lipgloss.Style
	failure        lipgloss.Style
}

type ThemeName string

const (
	ThemeCyan    ThemeName = "cyan"
	ThemeMatrix  ThemeName = "matrix"
	ThemeAmber   ThemeName = "amber"
	ThemeIceBlue ThemeName = "ice"
	ThemeDracula ThemeName = "dracula"
)

type ThemePalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Inactive  lipgloss.Color
}

var palettes = map[ThemeName]ThemePalette{
	ThemeCyan: {
		Primary:   lipgloss.Color("51"),
		Secondary: lipgloss.Color("33"),
		Success:   lipgloss.Color("46"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeMatrix: {
		Primary:   lipgloss.Color("82"),
		Secondary: lipgloss.Color("46"),
		Success:   lipgloss.Color("82"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeAmber: {
		Primary:   lipgloss.Color("220"),
		Secondary: lipgloss.Color("214"),
		Success:   lipgloss.Color("220"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeIceBlue: {
		Primary:   lipgloss.Color("159"),
		Secondary: lipgloss.Color("39"),
		Success:   lipgloss.Color("51"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	ThemeDracula: {
		Primary:   lipgloss.Color("141"),
		Secondary: lipgloss.Color("117"),
		Success:   lipgloss.Color("84"),
		Error:     lipgloss.Color("203"),
		Inactive:  lipgloss.Color("240"),
	},
}

// GetTheme returns the styles for theme, falling back to cyan.
func GetTheme(theme ThemeName) styles {
	if palette, ok := palettes[theme]; ok {
		return newStylesFromPalette(palette)
	}
	return newStylesFromPalette(palettes[ThemeCyan])
}

func ListThemes() []ThemeName {
	return []ThemeName{
		ThemeCyan,
		ThemeMatrix,
		ThemeAmber,
		ThemeIceBlue,
		ThemeDracula,
	}
}

func isValidTheme(name ThemeName) bool {
	_, ok := palettes[name]
	return ok
}

func newStylesFromPalette(p ThemePalette) styles {
	return styles{
		app:          lipgloss.NewStyle().Margin(1, 2),
		title:        lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		subtitle:     lipgloss.NewStyle().Foreground(p.Inactive).MarginBottom(1),
		label:        lipgloss.NewStyle().Foreground(p.Inactive).Bold(true),
		labelFocused: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		language:     lipgloss.NewStyle().Foreground(p.Inactive).Padding(0, 1),
		languageActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),
		errorBox: lipgloss.NewStyle().
			Foreground(p.Error).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),
		resultHeader: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		resultPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary).
			Padding(0, 1),
		button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(p.Secondary).
			Bold(true).
			Padding(0, 2),
		buttonDisabled: lipgloss.NewStyle().
			Foreground(p.Inactive).
			Background(lipgloss.Color("236")).
			Padding(0, 2),
		inactive: lipgloss.NewStyle().Foreground(p.Inactive),
		success:  lipgloss.NewStyle().Foreground(p.Success),
		failure:  lipgloss.NewStyle().Foreground(p.Error),
	}
}
