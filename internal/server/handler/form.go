// Package handler provides the HTTP handlers of the web review form.
package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxFormSize bounds the submitted form body.
const maxFormSize = 1 << 20

// FormHandler renders the review form and submits it to the review service.
// Each request gets a fresh form.Controller: the page owns its state and
// nothing survives the response.
type FormHandler struct {
	gateway core.ReviewGateway
	tmpl    *template.Template
	logger  *slog.Logger
}

// NewFormHandler parses the page template and returns the handler.
func NewFormHandler(gw core.ReviewGateway, logger *slog.Logger) (*FormHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &FormHandler{gateway: gw, tmpl: tmpl, logger: logger}, nil
}

type languageOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Languages []languageOption
	Code      string
	Error     string
	Result    string
	HasResult bool
	CanSubmit bool
}

func newPageData(c *form.Controller) pageData {
	langs := core.SupportedLanguages()
	options := make([]languageOption, 0, len(langs))
	for _, l := range langs {
		options = append(options, languageOption{
			Value:    l.String(),
			Label:    l.Title(),
			Selected: l == c.Language(),
		})
	}
	return pageData{
		Languages: options,
		Code:      c.Code(),
		Error:     c.Error(),
		Result:    c.Display(),
		HasResult: c.Result() != nil,
		CanSubmit: c.CanSubmit(),
	}
}

// Index renders an empty form. An optional ?language= preselects the language.
func (h *FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	c := form.NewController()
	if l, err := core.ParseLanguage(r.URL.Query().Get("language")); err == nil {
		c.SetLanguage(l)
	}
	h.render(w, http.StatusOK, c)
}

// Reset renders the form emptied of code, result and error, keeping the language.
func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Index(w, r)
}

// Review submits the posted form to the review service and renders the outcome.
func (h *FormHandler) Review(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse review form", "error", err)
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	lang, err := core.ParseLanguage(r.PostFormValue("language"))
	if err != nil {
		h.logger.Warn("rejected review form", "error", err)
		http.Error(w, "Unsupported language", http.StatusBadRequest)
		return
	}

	c := form.NewController()
	c.SetLanguage(lang)
	c.SetCode(r.PostFormValue("code"))

	if err := c.Submit(r.Context(), h.gateway); err != nil && !errors.Is(err, form.ErrEmptyCode) {
		h.logger.Error("review submission failed", "error", err)
	}
	if msg := c.Error(); msg != "" {
		h.logger.Info("review finished with error", "language", lang, "message", msg)
	}
	h.render(w, http.StatusOK, c)
}

func (h *FormHandler) render(w http.ResponseWriter, status int, c *form.Controller) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", newPageData(c)); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
