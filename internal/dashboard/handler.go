package dashboard

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/vilaca/portfolio-stats/internal/service"
)

// Handler serves the aggregated statistics to the portfolio page.
type Handler struct {
	renderer Renderer
	logger   *zap.Logger
	stats    StatsService
}

// StatsService mounts a fresh aggregate view (Dependency Inversion Principle).
type StatsService interface {
	Mount(ctx context.Context) *service.View
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	Renderer Renderer
	Logger   *zap.Logger
	Stats    StatsService
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		renderer: cfg.Renderer,
		logger:   logger,
		stats:    cfg.Stats,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.handleHealth)
	mux.HandleFunc("GET /api/stats", h.handleStats)
}

// handleHealth serves the health check endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.Error("failed to render health", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleStats mounts a new view for this page load, waits for every source to settle
// and returns the aggregate. Nothing is reused between requests.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	view := h.stats.Mount(r.Context())

	agg, err := view.Wait(r.Context())
	if err != nil {
		// Client went away; the view is dropped with its late results.
		h.logger.Debug("stats request abandoned", zap.String("view", view.ID), zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-View-ID", view.ID)

	if err := h.renderer.RenderStatsJSON(w, agg); err != nil {
		h.logger.Error("failed to render stats", zap.String("view", view.ID), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// LoggingMiddleware logs each request at debug level.
func LoggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}
