package moderation

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
)

func newWebhook() *Webhook {
	return NewWebhook(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWebhookAcceptsDecision(t *testing.T) {
	w := newWebhook()
	req := httptest.NewRequest(http.MethodPost, "/decisions",
		strings.NewReader(`{"campaign_id": 7, "status": "approved", "decided_by": "mod-1"}`))
	rec := httptest.NewRecorder()

	w.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case d := <-w.Decisions():
		assert.Equal(t, int64(7), d.CampaignID)
		assert.Equal(t, domain.StatusApproved, d.Status)
		assert.Equal(t, "mod-1", d.DecidedBy)
	default:
		t.Fatal("decision not buffered")
	}
}

func TestWebhookRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"unknown status", `{"campaign_id": 7, "status": "deleted"}`},
		{"pending verdict", `{"campaign_id": 7, "status": "pending"}`},
		{"missing campaign id", `{"status": "approved"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWebhook()
			req := httptest.NewRequest(http.MethodPost, "/decisions", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			w.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
