package usecase

import (
	"context"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// AvailabilityChecker answers whether a location is free across a set of
// dates. An occupied slot blocks new bookings no matter the occupant's
// moderation status; rejection does not currently free the slot.
type AvailabilityChecker struct {
	calendar port.CalendarRepository
}

// NewAvailabilityChecker creates a checker over the calendar store.
func NewAvailabilityChecker(calendar port.CalendarRepository) *AvailabilityChecker {
	return &AvailabilityChecker{calendar: calendar}
}

// Occupied returns the subset of dates already taken for the location.
// Read-only; dates are assumed validated by the caller.
func (c *AvailabilityChecker) Occupied(ctx context.Context, loc domain.Location, dates []domain.Date) ([]domain.Date, error) {
	return c.calendar.OccupiedDates(ctx, loc, dates)
}
