package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleTodayView lists today's approved campaigns with their display
// assets. The Origin header only selects the asset namespace (dev callers
// get dev assets); it grants nothing.
func (h *Handler) handleTodayView(w http.ResponseWriter, r *http.Request) {
	items, err := h.visibility.TodayView(r.Context(), r.Header.Get("Origin"))
	if err != nil {
		h.logger.Error("today view error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(items); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
