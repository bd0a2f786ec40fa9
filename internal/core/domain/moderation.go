package domain

// ModerationDecision is one verdict delivered by the external moderation
// collaborator. The engine only applies decisions; it never makes them.
type ModerationDecision struct {
	CampaignID int64
	Status     ModerationStatus
	DecidedBy  string
}
