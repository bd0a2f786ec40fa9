package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
)

func TestApplyDecision(t *testing.T) {
	campaigns := newFakeCampaigns()
	campaigns.put(domain.Campaign{ID: 1, OwnerID: "alice", Status: domain.StatusPending})
	applier := NewModerationApplier(campaigns, discardLogger())

	err := applier.Apply(context.Background(), domain.ModerationDecision{
		CampaignID: 1,
		Status:     domain.StatusApproved,
		DecidedBy:  "mod-7",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, campaigns.records[1].Status)
}

func TestApplyDecisionIgnoresAlreadyDecided(t *testing.T) {
	campaigns := newFakeCampaigns()
	campaigns.put(domain.Campaign{ID: 1, OwnerID: "alice", Status: domain.StatusRejected})
	applier := NewModerationApplier(campaigns, discardLogger())

	err := applier.Apply(context.Background(), domain.ModerationDecision{
		CampaignID: 1,
		Status:     domain.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, campaigns.records[1].Status)
}

func TestApplyDecisionUnknownCampaign(t *testing.T) {
	applier := NewModerationApplier(newFakeCampaigns(), discardLogger())

	err := applier.Apply(context.Background(), domain.ModerationDecision{
		CampaignID: 42,
		Status:     domain.StatusApproved,
	})
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestApplyDecisionRejectsPendingVerdict(t *testing.T) {
	campaigns := newFakeCampaigns()
	campaigns.put(domain.Campaign{ID: 1, Status: domain.StatusPending})
	applier := NewModerationApplier(campaigns, discardLogger())

	err := applier.Apply(context.Background(), domain.ModerationDecision{
		CampaignID: 1,
		Status:     domain.StatusPending,
	})
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
}
