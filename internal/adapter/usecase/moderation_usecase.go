package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// ModerationApplier consumes decisions from the external moderation
// collaborator and applies them to campaign records. Decision making
// itself lives outside this engine.
type ModerationApplier struct {
	campaigns port.CampaignRepository
	logger    *slog.Logger
}

// NewModerationApplier creates an applier over the campaign store.
func NewModerationApplier(campaigns port.CampaignRepository, logger *slog.Logger) *ModerationApplier {
	return &ModerationApplier{campaigns: campaigns, logger: logger}
}

// Run drains the decision source until the context is cancelled or the
// source closes. Individual bad decisions are logged and skipped.
func (a *ModerationApplier) Run(ctx context.Context, src port.ModerationDecisionSource) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-src.Decisions():
			if !ok {
				return
			}
			if err := a.Apply(ctx, d); err != nil {
				a.logger.Error("apply moderation decision",
					slog.Int64("campaign_id", d.CampaignID),
					slog.String("status", string(d.Status)),
					slog.Any("error", err))
			}
		}
	}
}

// Apply moves one pending campaign to approved or rejected.
func (a *ModerationApplier) Apply(ctx context.Context, d domain.ModerationDecision) error {
	if d.Status != domain.StatusApproved && d.Status != domain.StatusRejected {
		return fmt.Errorf("%w: %s", domain.ErrUnknownStatus, d.Status)
	}
	c, err := a.campaigns.Get(ctx, d.CampaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return domain.ErrCampaignNotFound
	}
	if c.Status != domain.StatusPending {
		a.logger.Info("moderation decision ignored, campaign already decided",
			slog.Int64("campaign_id", d.CampaignID),
			slog.String("current", string(c.Status)))
		return nil
	}
	if err := a.campaigns.UpdateStatus(ctx, d.CampaignID, d.Status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	a.logger.Info("moderation decision applied",
		slog.Int64("campaign_id", d.CampaignID),
		slog.String("status", string(d.Status)),
		slog.String("decided_by", d.DecidedBy))
	return nil
}
