// Package handlers provides the HTTP API for the web interface.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/gate"
	"github.com/alienxp03/splitdecision/internal/history"
	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/prompt"
	"github.com/alienxp03/splitdecision/internal/ratelimit"
)

const (
	errNoServerKey      = "Server OpenAI key is not configured."
	errFreeTierMissing  = "Free tier is not configured on this server. Please add your own API key."
	errRateLimited      = "Rate limit exceeded. Add your own API key in Advanced Settings for unlimited access."
	errRateLimitFailure = "Rate limiting is unavailable. Please try again later."
)

// Handler holds dependencies for HTTP handlers. client is nil when no
// shared key is configured; limiter is nil when Redis is not configured,
// which disables rate limiting; store is nil when history is disabled.
type Handler struct {
	client  *llm.Client
	gate    *gate.Gate
	limiter *ratelimit.Limiter
	store   history.Store
	model   string
	logger  *slog.Logger
}

// New creates a new Handler.
func New(client *llm.Client, g *gate.Gate, limiter *ratelimit.Limiter, store history.Store, model string, logger *slog.Logger) *Handler {
	if model == "" {
		model = prompt.DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		client:  client,
		gate:    g,
		limiter: limiter,
		store:   store,
		model:   model,
		logger:  logger,
	}
}

// Router builds the HTTP routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/stream", h.handleStream)
	r.Get("/api/comparisons", h.handleListComparisons)
	r.Post("/api/comparisons", h.handleSaveComparison)
	r.Get("/api/themes", h.handleThemes)
	r.Get("/api/agents", h.handleAgents)

	return r
}

// clientIP identifies the caller for rate limiting. Deployments sit behind a
// proxy, so the first X-Forwarded-For entry wins.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); ip != "" {
			return ip
		}
	}
	return "unknown"
}

// checkRateLimit consumes quota for the caller. It reports false after
// writing a response when the request may not proceed.
func (h *Handler) checkRateLimit(w http.ResponseWriter, r *http.Request) bool {
	if h.limiter == nil {
		return true
	}

	result, err := h.limiter.Check(r.Context(), clientIP(r))
	if err != nil {
		h.logger.Error("rate limit check failed", "error", err)
		h.jsonError(w, errRateLimitFailure, http.StatusInternalServerError)
		return false
	}
	if !result.OK {
		h.jsonError(w, errRateLimited, http.StatusTooManyRequests)
		return false
	}
	return true
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !h.checkRateLimit(w, r) {
		return
	}
	if h.gate == nil {
		h.jsonError(w, errNoServerKey, http.StatusInternalServerError)
		return
	}

	var req struct {
		OptionA string `json:"optionA"`
		OptionB string `json:"optionB"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OptionA = strings.TrimSpace(req.OptionA)
	req.OptionB = strings.TrimSpace(req.OptionB)
	if req.OptionA == "" || req.OptionB == "" {
		h.jsonError(w, "optionA and optionB are required", http.StatusBadRequest)
		return
	}

	result, err := h.gate.Check(r.Context(), req.OptionA, req.OptionB)
	if err != nil {
		h.logger.Error("validation failed", "error", err)
		h.jsonError(w, "Validation failed. Please try again.", http.StatusInternalServerError)
		return
	}

	h.json(w, result)
}

func (h *Handler) handleListComparisons(w http.ResponseWriter, r *http.Request) {
	// History is a nicety; readers get an empty list when the store is
	// missing or failing.
	limit := history.DefaultRecent
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records := []core.ComparisonRecord{}
	if h.store != nil {
		got, err := h.store.Recent(r.Context(), limit)
		if err != nil {
			h.logger.Warn("failed to read comparisons", "error", err)
		} else if got != nil {
			records = got
		}
	}
	h.json(w, records)
}

func (h *Handler) handleSaveComparison(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OptionA    string        `json:"optionA"`
		OptionB    string        `json:"optionB"`
		Category   string        `json:"category"`
		Theme      core.ThemeKey `json:"theme"`
		Winner     string        `json:"winner"`
		Confidence *int          `json:"confidence"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.OptionA == "" || req.OptionB == "" || req.Winner == "" || req.Confidence == nil {
		h.jsonError(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if !core.ValidTheme(req.Theme) {
		h.jsonError(w, "Invalid theme", http.StatusBadRequest)
		return
	}

	rec := core.ComparisonRecord{
		OptionA:    req.OptionA,
		OptionB:    req.OptionB,
		Category:   req.Category,
		Theme:      req.Theme,
		Winner:     req.Winner,
		Confidence: *req.Confidence,
		Timestamp:  time.Now().UnixMilli(),
	}

	if h.store != nil {
		if err := h.store.Save(r.Context(), history.Sanitize(rec)); err != nil {
			h.logger.Error("failed to save comparison", "error", err)
			h.jsonError(w, "Failed to save comparison", http.StatusInternalServerError)
			return
		}
	}

	h.json(w, map[string]bool{"ok": true})
}

func (h *Handler) handleThemes(w http.ResponseWriter, r *http.Request) {
	h.json(w, prompt.Themes())
}

func (h *Handler) handleAgents(w http.ResponseWriter, r *http.Request) {
	h.json(w, prompt.Agents())
}

func (h *Handler) json(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
