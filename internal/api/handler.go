// Package api serves a read-only JSON view of wallets, the reward ledger
// and the scoreboard.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
	"github.com/vovakirdan/pet-arcade/internal/storage"
)

// Store is the read side of the persistence layer.
type Store interface {
	Ping() error
	LoadBalance(owner string) (int, bool, error)
	Ledger(owner string, limit int) ([]storage.LedgerEntry, error)
	TopScores(mode string, limit int) ([]storage.ResultEntry, error)
	HighScore(mode string) (int, error)
	AllModeStats() (map[string]*storage.ModeStats, error)
}

// RequestIDHeader carries the request ID in requests and responses.
const RequestIDHeader = "X-Request-ID"

const maxLimit = 100

// Handler holds HTTP handlers and dependencies
type Handler struct {
	store  Store
	logger *log.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(store Store, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Routes sets up all HTTP routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(h.requestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/modes", h.ListModes)
		r.Get("/wallets/{owner}", h.GetWallet)
		r.Get("/wallets/{owner}/ledger", h.GetLedger)
		r.Get("/scores/{mode}", h.GetScores)
		r.Get("/stats", h.GetStats)
	})

	// Health check
	r.Get("/healthz", h.Health)

	return r
}

type ctxKey struct{}

// RequestID returns the request ID stored by the router, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
			"request_id", RequestID(r.Context()),
		)
	})
}

// Health handles health check requests
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(); err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListModes handles GET /v1/modes
func (h *Handler) ListModes(w http.ResponseWriter, r *http.Request) {
	infos := registry.List()
	resp := make([]ModeResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, ModeResponse{
			Mode:       info.Mode.String(),
			Title:      info.Title,
			ScoreLabel: info.ScoreLabel,
			Info:       info.Info,
		})
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// GetWallet handles GET /v1/wallets/{owner}
func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	balance, ok, err := h.store.LoadBalance(owner)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load wallet", err.Error())
		return
	}
	if !ok {
		h.respondError(w, http.StatusNotFound, "wallet not found", "no wallet for owner "+owner)
		return
	}

	h.respondJSON(w, http.StatusOK, WalletResponse{Owner: owner, Balance: balance})
}

// GetLedger handles GET /v1/wallets/{owner}/ledger
func (h *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	limit, ok := h.limit(w, r, 20)
	if !ok {
		return
	}

	entries, err := h.store.Ledger(owner, limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load ledger", err.Error())
		return
	}

	resp := make([]LedgerResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, LedgerResponse{
			ID:        e.ID,
			Amount:    e.Amount,
			Reason:    e.Reason,
			CreatedAt: formatTime(e.CreatedAt),
		})
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// GetScores handles GET /v1/scores/{mode}
func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request) {
	mode, known := core.ParseMode(chi.URLParam(r, "mode"))
	if !known {
		h.respondError(w, http.StatusNotFound, "unknown mode", "mode must be one of the registered minigames")
		return
	}
	limit, ok := h.limit(w, r, 10)
	if !ok {
		return
	}

	top, err := h.store.TopScores(mode.String(), limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load scores", err.Error())
		return
	}
	best, err := h.store.HighScore(mode.String())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load high score", err.Error())
		return
	}

	resp := ScoresResponse{Mode: mode.String(), HighScore: best, Scores: make([]ScoreResponse, 0, len(top))}
	for _, e := range top {
		resp.Scores = append(resp.Scores, ScoreResponse{
			SessionID: e.SessionID,
			Owner:     e.Owner,
			Score:     e.Score,
			Reward:    e.Reward,
			Reason:    e.Reason,
			CreatedAt: formatTime(e.CreatedAt),
		})
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// GetStats handles GET /v1/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.AllModeStats()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load stats", err.Error())
		return
	}

	resp := make([]StatsResponse, 0, len(stats))
	for _, mode := range core.Modes {
		st, ok := stats[mode.String()]
		if !ok {
			continue
		}
		resp = append(resp, StatsResponse{
			Mode:        st.Mode,
			Sessions:    st.Sessions,
			HighScore:   st.HighScore,
			AvgScore:    st.AvgScore,
			TotalReward: st.TotalReward,
			LastPlayed:  formatTime(st.LastPlayed),
		})
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// limit parses the ?limit= query parameter.
func (h *Handler) limit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxLimit {
		h.respondError(w, http.StatusBadRequest, "invalid limit", "limit must be between 1 and "+strconv.Itoa(maxLimit))
		return 0, false
	}
	return n, true
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// respondJSON sends a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("cannot encode response", "err", err)
	}
}

// respondError sends an error response
func (h *Handler) respondError(w http.ResponseWriter, status int, errorMsg, message string) {
	h.respondJSON(w, status, ErrorResponse{
		Error:   errorMsg,
		Message: message,
	})
}
