package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/form"
)

type focusArea int

const (
	focusLanguage focusArea = iota
	focusCode
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	editorHeight  = 12
)

type model struct {
	styles  styles
	keys    keyMap
	gateway core.ReviewGateway
	form    *form.Controller
	logger  *slog.Logger
	// raw disables markdown rendering of the result.
	raw bool

	textarea textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	focus  focusArea
	width  int
	height int
	health string
}

func initialModel(gw core.ReviewGateway, theme ThemeName, raw bool, logger *slog.Logger) *model {
	st := GetTheme(theme)

	ta := textarea.New()
	ta.Placeholder = "Paste your code here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.SetWidth(defaultWidth - 6)
	ta.SetHeight(editorHeight)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.title

	return &model{
		styles:   st,
		keys:     newKeyMap(),
		gateway:  gw,
		form:     form.NewController(),
		logger:   logger,
		raw:      raw,
		textarea: ta,
		spinner:  sp,
		viewport: viewport.New(defaultWidth-6, 8),
		help:     help.New(),
		focus:    focusCode,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, healthCmd(m.gateway))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case reviewCompletedMsg:
		if err := m.form.Complete(msg.result, msg.err); err != nil {
			m.logger.Warn("ignoring unexpected review completion", "error", err)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("review failed", "error", msg.err)
		} else {
			m.logger.Info("review completed", "has_review", msg.result != nil && msg.result.HasReview)
		}
		m.refreshResult()
		return m, m.focusCode()

	case healthCheckedMsg:
		if msg.err != nil {
			m.logger.Warn("review service health check failed", "error", msg.err)
			m.health = m.styles.failure.Render("○ review service unreachable")
		} else {
			m.health = m.styles.success.Render(fmt.Sprintf("● %s: %s", msg.status.Service, msg.status.Status))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.form.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	return m.forwardToEditor(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.Reset):
		m.form.Reset()
		m.textarea.Reset()
		m.refreshResult()
		if m.form.Loading() {
			return m, nil
		}
		return m, m.focusCode()

	case key.Matches(msg, m.keys.Focus):
		if m.form.Loading() {
			return m, nil
		}
		if m.focus == focusCode {
			m.focus = focusLanguage
			m.textarea.Blur()
			return m, nil
		}
		return m, m.focusCode()

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusLanguage {
		switch {
		case key.Matches(msg, m.keys.PrevLang):
			m.cycleLanguage(-1)
		case key.Matches(msg, m.keys.NextLang):
			m.cycleLanguage(1)
		}
		return m, nil
	}

	return m.forwardToEditor(msg)
}

// forwardToEditor passes input to the textarea unless a request is in flight.
func (m *model) forwardToEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form.Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.form.SetCode(m.textarea.Value())
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	m.form.SetCode(m.textarea.Value())
	req, err := m.form.Begin()
	switch {
	case errors.Is(err, form.ErrBusy):
		return nil
	case errors.Is(err, form.ErrEmptyCode):
		m.refreshResult()
		return nil
	case err != nil:
		m.logger.Error("unexpected submit failure", "error", err)
		return nil
	}

	m.logger.Info("submitting review", "language", req.Language, "code_bytes", len(req.Code))
	m.textarea.Blur()
	m.refreshResult()
	return tea.Batch(m.spinner.Tick, reviewCmd(m.gateway, req))
}

func (m *model) focusCode() tea.Cmd {
	m.focus = focusCode
	return m.textarea.Focus()
}

func (m *model) cycleLanguage(step int) {
	langs := core.SupportedLanguages()
	idx := 0
	for i, l := range langs {
		if l == m.form.Language() {
			idx = i
			break
		}
	}
	idx = (idx + step + len(langs)) % len(langs)
	m.form.SetLanguage(langs[idx])
}

func (m *model) resize() {
	inner := max(m.width-6, 20)
	m.textarea.SetWidth(inner)
	m.viewport.Width = inner
	m.viewport.Height = max(m.height-editorHeight-14, 4)
	m.help.Width = inner
	m.refreshResult()
}

// refreshResult re-renders the result area from the form state.
func (m *model) refreshResult() {
	text := m.form.Display()
	if text == "" {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderResult(text))
	m.viewport.GotoTop()
}

func (m *model) renderResult(text string) string {
	if m.raw {
		return text
	}
	source := text
	if r := m.form.Result(); r != nil && (!r.HasReview || r.Review == "") {
		source = "```json\n" + text + "\n```"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(m.viewport.Width-2, 20)),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable, showing raw text", "error", err)
		return text
	}
	out, err := renderer.Render(source)
	if err != nil {
		m.logger.Warn("failed to render review markdown, showing raw text", "error", err)
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (m *model) View() string {
	var sections []string

	sections = append(sections,
		m.styles.title.Render("AI Code Review Agent"),
		m.styles.subtitle.Render("Get intelligent code feedback powered by AI"),
	)

	sections = append(sections, m.labelView("Programming Language", m.focus == focusLanguage), m.languageView(), "")
	sections = append(sections, m.labelView("Code to Review", m.focus == focusCode), m.textarea.View(), "")

	if msg := m.form.Error(); msg != "" {
		sections = append(sections, m.styles.errorBox.Render(msg), "")
	}

	sections = append(sections, m.buttonView())

	if m.form.Result() != nil {
		sections = append(sections,
			"",
			m.styles.resultHeader.Render("Code Review Results"),
			m.styles.resultPanel.Render(m.viewport.View()),
			m.styles.inactive.Render("ctrl+r: Review Another Code"),
		)
	}

	footer := m.help.View(m.keys)
	if m.health != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Left, m.health, "  ", footer)
	}
	sections = append(sections, "", footer)

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *model) labelView(text string, focused bool) string {
	if focused {
		return m.styles.labelFocused.Render("› " + text)
	}
	return m.styles.label.Render("  " + text)
}

func (m *model) languageView() string {
	langs := core.SupportedLanguages()
	items := make([]string, 0, len(langs))
	for _, l := range langs {
		if l == m.form.Language() {
			items = append(items, m.styles.languageActive.Render(l.Title()))
		} else {
			items = append(items, m.styles.language.Render(l.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m *model) buttonView() string {
	if m.form.Loading() {
		return m.styles.buttonDisabled.Render(m.spinner.View() + " Reviewing Code...")
	}
	return m.styles.button.Render("Review Code")
}
