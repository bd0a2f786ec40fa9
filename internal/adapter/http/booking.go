package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"adboard/internal/core/domain"
)

// maxAssetBytes caps the raw upload size accepted per booking.
const maxAssetBytes = 10 << 20

// handleBook processes a booking request. It expects a multipart form
// with a `location` field, a `dates` field (comma separated YYYY-MM-DD)
// and an `asset` file. The owner id comes from the session collaborator;
// anonymous callers get HTTP 401. Validation failures map to 400,
// business-rule rejections to 402/409, a missing ledger record to 404 and
// saga failures to a generic 500.
func (h *Handler) handleBook(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.identity.OwnerID(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAssetBytes)
	if err := r.ParseMultipartForm(maxAssetBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	location := r.FormValue("location")
	var dates []string
	for _, d := range strings.Split(r.FormValue("dates"), ",") {
		if d = strings.TrimSpace(d); d != "" {
			dates = append(dates, d)
		}
	}

	file, _, err := r.FormFile("asset")
	if err != nil {
		http.Error(w, "missing asset", http.StatusBadRequest)
		return
	}
	defer file.Close()
	rawAsset, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "unreadable asset", http.StatusBadRequest)
		return
	}

	result, err := h.booking.Book(r.Context(), ownerID, location, dates, rawAsset)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeBookingError maps the booking error taxonomy onto HTTP statuses.
// Caller-caused failures carry their reason; infrastructure failures stay
// generic, the detail is already logged server-side.
func (h *Handler) writeBookingError(w http.ResponseWriter, err error) {
	var (
		conflict     *domain.SlotConflictError
		insufficient *domain.InsufficientFundsError
	)
	switch {
	case errors.As(err, &conflict):
		http.Error(w, conflict.Error(), http.StatusConflict)
	case errors.As(err, &insufficient):
		http.Error(w, insufficient.Error(), http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrLedgerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmptyDates),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrUnknownLocation),
		errors.Is(err, domain.ErrEmptyAsset):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "booking failed", http.StatusInternalServerError)
	}
}
