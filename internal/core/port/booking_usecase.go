package port

import (
	"context"
	"time"

	"adboard/internal/core/domain"
)

// BookingUseCase is the primary write port of the engine: the multi-step
// reservation saga. Mock or fake implementations back the HTTP handler
// tests.
type BookingUseCase interface {
	// Book reserves the location on every requested date for a new
	// campaign owned by ownerID, uploads both assets, and debits the
	// owner's balance by the returned cost. Location and dates arrive as
	// raw strings and are validated here. On failure every already-applied
	// commit step is compensated in reverse order.
	Book(ctx context.Context, ownerID, location string, dates []string, rawAsset []byte) (*BookingResult, error)
}

// BookingResult is returned to the caller on a committed booking.
type BookingResult struct {
	CampaignID int64 `json:"campaign_id"`
	Cost       int64 `json:"cost"`
}

// VisibilityUseCase produces the viewer-scoped read models for the two
// public query endpoints. Both operations are read-only.
type VisibilityUseCase interface {
	// MonthView lists every occupied slot of the given civil month.
	// viewerID is empty for anonymous callers. Rejected campaigns are
	// omitted unless the viewer owns them; Status is set only on the
	// owner's items.
	MonthView(ctx context.Context, year int, month time.Month, viewerID string) ([]MonthItem, error)

	// TodayView lists today's approved campaigns with their display
	// assets. origin is the caller's declared request origin and selects
	// the asset namespace only; it is not an authorization input.
	TodayView(ctx context.Context, origin string) ([]TodayItem, error)
}

// MonthItem is one occupied slot in a month listing. Status is non-nil
// only when the viewer owns the campaign.
type MonthItem struct {
	CampaignID int64                    `json:"campaign_id"`
	OwnerID    string                   `json:"owner_id"`
	Location   domain.Location          `json:"location"`
	Date       domain.Date              `json:"date"`
	Status     *domain.ModerationStatus `json:"status,omitempty"`
}

// TodayItem is one approved campaign shown today. DisplayAsset is empty
// when the object is missing or unreadable.
type TodayItem struct {
	CampaignID   int64           `json:"campaign_id"`
	OwnerID      string          `json:"owner_id"`
	Location     domain.Location `json:"location"`
	DisplayAsset []byte          `json:"display_asset"`
}
