package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// handleMonthView lists the occupied slots of one civil month. `year` and
// `month` are required query parameters. The viewer identity is optional;
// anonymous callers see the public projection.
func (h *Handler) handleMonthView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 1 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	viewerID, _ := h.identity.OwnerID(r)

	items, err := h.visibility.MonthView(r.Context(), year, time.Month(month), viewerID)
	if err != nil {
		h.logger.Error("month view error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(items); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
