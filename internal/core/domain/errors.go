package domain

import (
	"errors"
	"fmt"
)

// Validation errors. Always recoverable by the caller correcting input.
var (
	ErrEmptyDates      = errors.New("no dates requested")
	ErrInvalidDate     = errors.New("malformed calendar date")
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownStatus   = errors.New("unknown moderation status")
	ErrEmptyAsset      = errors.New("empty asset")
)

// Lookup errors.
var (
	ErrLedgerNotFound   = errors.New("no ledger record for user")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAssetNotFound    = errors.New("asset not found")
)

// ErrBookingFailed is the generic failure surfaced when a commit step of
// the booking saga fails. Internal step detail is logged server-side, not
// leaked to the caller.
var ErrBookingFailed = errors.New("booking failed")

// SlotConflictError reports the first requested date whose location is
// already occupied by another campaign.
type SlotConflictError struct {
	Location Location
	Date     Date
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s is already booked on %s", e.Location, e.Date)
}

// InsufficientFundsError reports a balance too low for the requested
// booking, with both sides of the comparison.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %d, available %d", e.Required, e.Available)
}
