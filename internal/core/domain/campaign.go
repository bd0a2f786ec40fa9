package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ModerationStatus is the moderation state of a campaign. Transitions out
// of pending are driven exclusively by the external moderation collaborator.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// ParseStatus validates a raw moderation status string.
func ParseStatus(s string) (ModerationStatus, error) {
	switch ModerationStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return ModerationStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// Campaign represents one purchased advertisement. The content hash is
// advisory metadata for audit display; it is not enforced as unique.
type Campaign struct {
	ID          int64
	OwnerID     string
	ContentHash string
	Status      ModerationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// contentHashLen is the number of hex characters of the digest kept for display.
const contentHashLen = 10

// ContentHash returns the truncated SHA-256 digest of the raw asset bytes.
func ContentHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:contentHashLen]
}
