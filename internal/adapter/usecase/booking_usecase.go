package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/core/saga"
)

// BookingOrchestrator implements port.BookingUseCase. It runs the
// reservation saga: balance check, campaign record creation, asset
// uploads, calendar claims, balance debit, with reverse-order
// compensation when a commit step fails.
type BookingOrchestrator struct {
	checker   *AvailabilityChecker
	calendar  port.CalendarRepository
	campaigns port.CampaignRepository
	ledger    port.Ledger
	assets    port.AssetStore

	// namespace is the deployment environment prefix under which this
	// instance writes its assets.
	namespace string
	logger    *slog.Logger
}

// NewBookingOrchestrator wires the orchestrator with its collaborators.
func NewBookingOrchestrator(
	calendar port.CalendarRepository,
	campaigns port.CampaignRepository,
	ledger port.Ledger,
	assets port.AssetStore,
	namespace string,
	logger *slog.Logger,
) *BookingOrchestrator {
	return &BookingOrchestrator{
		checker:   NewAvailabilityChecker(calendar),
		calendar:  calendar,
		campaigns: campaigns,
		ledger:    ledger,
		assets:    assets,
		namespace: namespace,
		logger:    logger,
	}
}

// Book reserves the location for every requested date, creates the
// campaign and its two assets, and debits the owner. The debit runs last
// so a late failure never loses money without also losing the
// reservation, and an early failure never charges for a reservation that
// does not exist.
func (o *BookingOrchestrator) Book(ctx context.Context, ownerID, location string, rawDates []string, rawAsset []byte) (*port.BookingResult, error) {
	loc, err := domain.ParseLocation(location)
	if err != nil {
		return nil, err
	}
	dates, err := domain.ParseDates(rawDates)
	if err != nil {
		return nil, err
	}
	if len(rawAsset) == 0 {
		return nil, domain.ErrEmptyAsset
	}

	cost := domain.Cost(len(dates))

	balance, err := o.ledger.Balance(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("look up balance: %w", err)
	}
	if balance < cost {
		return nil, &domain.InsufficientFundsError{Required: cost, Available: balance}
	}

	occupied, err := o.checker.Occupied(ctx, loc, dates)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if len(occupied) > 0 {
		return nil, &domain.SlotConflictError{Location: loc, Date: occupied[0]}
	}

	var (
		campaignID int64
		conflict   domain.Date
	)
	steps := []saga.Step{
		{
			Name: "create campaign",
			Do: func(ctx context.Context) error {
				campaignID, err = o.campaigns.Create(ctx, ownerID, domain.ContentHash(rawAsset))
				return err
			},
			Undo: func(ctx context.Context) error {
				return o.campaigns.Delete(ctx, campaignID)
			},
		},
		{
			Name: "upload display asset",
			Do: func(ctx context.Context) error {
				key := domain.AssetKey(o.namespace, campaignID, domain.AssetDisplay)
				return o.assets.Put(ctx, key, domain.PlaceholderDisplay, "image/png")
			},
			Undo: func(ctx context.Context) error {
				return o.assets.Delete(ctx, domain.AssetKey(o.namespace, campaignID, domain.AssetDisplay))
			},
		},
		{
			Name: "upload raw asset",
			Do: func(ctx context.Context) error {
				key := domain.AssetKey(o.namespace, campaignID, domain.AssetRaw)
				return o.assets.Put(ctx, key, rawAsset, http.DetectContentType(rawAsset))
			},
			Undo: func(ctx context.Context) error {
				return o.assets.Delete(ctx, domain.AssetKey(o.namespace, campaignID, domain.AssetRaw))
			},
		},
	}
	for _, date := range dates {
		steps = append(steps, saga.Step{
			Name: fmt.Sprintf("claim slot %s", date),
			Do: func(ctx context.Context) error {
				if err := o.calendar.ClaimSlot(ctx, date, loc, campaignID); err != nil {
					if errors.Is(err, port.ErrSlotTaken) {
						conflict = date
					}
					return err
				}
				return nil
			},
			Undo: func(ctx context.Context) error {
				return o.calendar.ReleaseSlot(ctx, date, loc, campaignID)
			},
		})
	}
	steps = append(steps, saga.Step{
		Name: "debit balance",
		Do: func(ctx context.Context) error {
			return o.ledger.Debit(ctx, ownerID, cost)
		},
	})

	if err := saga.Run(ctx, o.logger, steps); err != nil {
		o.logger.Error("booking saga failed",
			slog.String("owner_id", ownerID),
			slog.String("location", string(loc)),
			slog.Any("error", err))

		// Conflicts the pre-check could not see (concurrent bookings or
		// spends) stay business-rule rejections; everything else is a
		// dependency failure the caller cannot act on.
		if errors.Is(err, port.ErrSlotTaken) {
			return nil, &domain.SlotConflictError{Location: loc, Date: conflict}
		}
		var insufficient *domain.InsufficientFundsError
		if errors.As(err, &insufficient) {
			return nil, insufficient
		}
		return nil, domain.ErrBookingFailed
	}

	return &port.BookingResult{CampaignID: campaignID, Cost: cost}, nil
}
