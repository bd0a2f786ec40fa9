package port

import (
	"context"

	"adboard/internal/core/domain"
)

// CampaignRepository persists campaign records.
type CampaignRepository interface {
	// Create inserts a new campaign in pending status and returns its id.
	Create(ctx context.Context, ownerID, contentHash string) (int64, error)

	// Delete removes a campaign row. Used only by saga compensation when
	// the owning booking fails after the row was created.
	Delete(ctx context.Context, id int64) error

	// Get returns a campaign by id, or nil when it does not exist.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)

	// GetMany resolves a batch of campaign ids. Missing ids are simply
	// absent from the result, not an error.
	GetMany(ctx context.Context, ids []int64) (map[int64]domain.Campaign, error)

	// UpdateStatus applies a moderation decision. Returns
	// domain.ErrCampaignNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id int64, status domain.ModerationStatus) error
}
