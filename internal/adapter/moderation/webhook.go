// Package moderation receives verdicts from the external moderation
// collaborator over an internal webhook and exposes them as a
// port.ModerationDecisionSource.
package moderation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"adboard/internal/core/domain"
)

// Webhook buffers incoming decisions in a channel drained by the
// moderation applier.
type Webhook struct {
	ch     chan domain.ModerationDecision
	logger *slog.Logger
}

// NewWebhook creates a webhook source with a small buffer so a slow
// applier briefly backpressures the collaborator instead of dropping
// decisions.
func NewWebhook(logger *slog.Logger) *Webhook {
	return &Webhook{
		ch:     make(chan domain.ModerationDecision, 64),
		logger: logger,
	}
}

// Decisions implements port.ModerationDecisionSource.
func (w *Webhook) Decisions() <-chan domain.ModerationDecision {
	return w.ch
}

type decisionRequest struct {
	CampaignID int64  `json:"campaign_id"`
	Status     string `json:"status"`
	DecidedBy  string `json:"decided_by"`
}

// ServeHTTP accepts one decision per request. Malformed payloads get
// HTTP 400; accepted decisions are applied asynchronously, so the
// response is 202.
func (w *Webhook) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(rw, "invalid JSON", http.StatusBadRequest)
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil || status == domain.StatusPending {
		http.Error(rw, "status must be approved or rejected", http.StatusBadRequest)
		return
	}
	if req.CampaignID <= 0 {
		http.Error(rw, "invalid campaign_id", http.StatusBadRequest)
		return
	}

	select {
	case w.ch <- domain.ModerationDecision{
		CampaignID: req.CampaignID,
		Status:     status,
		DecidedBy:  req.DecidedBy,
	}:
		rw.WriteHeader(http.StatusAccepted)
	case <-r.Context().Done():
		http.Error(rw, "cancelled", http.StatusServiceUnavailable)
	}
}
