package port

import "adboard/internal/core/domain"

// ModerationDecisionSource delivers verdicts made by the external
// moderation collaborator. The channel is closed when the source shuts
// down. Modelled as an injected interface so the applier and projector
// stay testable without the collaborator.
type ModerationDecisionSource interface {
	Decisions() <-chan domain.ModerationDecision
}
