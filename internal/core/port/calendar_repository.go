package port

import (
	"context"
	"errors"
	"time"

	"adboard/internal/core/domain"
)

// ErrSlotTaken is returned by ClaimSlot when the conditional claim finds
// the slot already occupied. The store enforces this atomically, so a
// booking that slipped past the availability pre-check still cannot
// overwrite another campaign's reservation.
var ErrSlotTaken = errors.New("slot already taken")

// CalendarRepository is the persistent mapping from calendar date to the
// five location slots. Implementations must be concurrency-safe.
type CalendarRepository interface {
	// Day returns the row for the given date, or nil when no booking has
	// touched that date yet (absence means all five locations are free).
	Day(ctx context.Context, date domain.Date) (*domain.Day, error)

	// DaysInMonth returns every existing row whose date falls inside the
	// given civil month, ordered by date.
	DaysInMonth(ctx context.Context, year int, month time.Month) ([]domain.Day, error)

	// OccupiedDates returns the subset of dates on which the location is
	// already occupied by any campaign, regardless of its moderation
	// status.
	OccupiedDates(ctx context.Context, loc domain.Location, dates []domain.Date) ([]domain.Date, error)

	// ClaimSlot atomically assigns the location on the given date to the
	// campaign, creating the row if needed. Returns ErrSlotTaken when the
	// slot is already held.
	ClaimSlot(ctx context.Context, date domain.Date, loc domain.Location, campaignID int64) error

	// ReleaseSlot clears the location on the given date, but only if it is
	// still held by the given campaign. Used by saga compensation.
	ReleaseSlot(ctx context.Context, date domain.Date, loc domain.Location, campaignID int64) error
}
