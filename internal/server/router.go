package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/server/handler"
)

// NewRouter creates and configures the HTTP router: the review form pages,
// a liveness endpoint and the /api passthrough to the review service.
func NewRouter(cfg *config.Config, gw core.ReviewGateway, logger *slog.Logger) (*chi.Mux, error) {
	target, err := url.Parse(cfg.Review.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid review service URL: %w", err)
	}

	formHandler, err := handler.NewFormHandler(gw, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Cache-Control", "public, max-age=0, must-revalidate"))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/", formHandler.Index)
	r.Post("/review", formHandler.Review)
	r.Get("/reset", formHandler.Reset)

	r.Handle("/api/*", http.StripPrefix("/api", newAPIProxy(target, logger)))

	return r, nil
}

// newAPIProxy forwards /api/<path> to <review service>/<path>.
func newAPIProxy(target *url.URL, logger *slog.Logger) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("review service proxy failed", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"review service unavailable"}`))
	}
	return proxy
}
