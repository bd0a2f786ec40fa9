package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adboard/internal/core/port"
)

// Identity resolves the verified owner id the session collaborator
// attached to a request. Reads may proceed anonymously.
type Identity interface {
	OwnerID(r *http.Request) (string, bool)
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	booking    port.BookingUseCase
	visibility port.VisibilityUseCase
	identity   Identity
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. moderationHook
// is the internal endpoint the moderation collaborator delivers verdicts
// to; it is mounted under /internal and expected to be gated off at the
// edge.
func NewHandler(
	booking port.BookingUseCase,
	visibility port.VisibilityUseCase,
	identity Identity,
	moderationHook http.Handler,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		booking:    booking,
		visibility: visibility,
		identity:   identity,
		logger:     logger,
	}
	r := chi.NewRouter()
	r.Use(h.requestLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/slots/book", h.handleBook)
		r.Get("/slots/month", h.handleMonthView)
		r.Get("/slots/today", h.handleTodayView)
		r.Method(http.MethodPost, "/internal/moderation/decisions", moderationHook)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestLog tags every request with a uuid and logs its outcome.
func (h *Handler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
		h.logger.Debug("request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("took", time.Since(start)))
	})
}
