package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// VisibilityProjector implements port.VisibilityUseCase. It turns Day and
// Campaign rows into viewer-scoped read models and never writes.
type VisibilityProjector struct {
	calendar  port.CalendarRepository
	campaigns port.CampaignRepository
	assets    port.AssetStore

	prodNamespace string
	devNamespace  string

	// tz is the fixed reference timezone campaigns are sold in. "Today"
	// is resolved in it regardless of caller locale.
	tz     *time.Location
	logger *slog.Logger
}

// NewVisibilityProjector wires the projector with its stores.
func NewVisibilityProjector(
	calendar port.CalendarRepository,
	campaigns port.CampaignRepository,
	assets port.AssetStore,
	prodNamespace, devNamespace string,
	tz *time.Location,
	logger *slog.Logger,
) *VisibilityProjector {
	return &VisibilityProjector{
		calendar:      calendar,
		campaigns:     campaigns,
		assets:        assets,
		prodNamespace: prodNamespace,
		devNamespace:  devNamespace,
		tz:            tz,
		logger:        logger,
	}
}

// MonthView lists every occupied slot of the month. Rejected campaigns
// are omitted for everyone but their owner; the status field is set only
// on the owner's own items. Dangling campaign references are skipped.
func (p *VisibilityProjector) MonthView(ctx context.Context, year int, month time.Month, viewerID string) ([]port.MonthItem, error) {
	days, err := p.calendar.DaysInMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	var ids []int64
	for _, day := range days {
		for _, id := range day.Slots {
			ids = append(ids, id)
		}
	}
	campaigns, err := p.campaigns.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve campaigns: %w", err)
	}

	items := make([]port.MonthItem, 0, len(ids))
	for _, day := range days {
		for _, loc := range domain.Locations() {
			id, ok := day.Slots[loc]
			if !ok {
				continue
			}
			c, ok := campaigns[id]
			if !ok {
				p.logger.Warn("dangling campaign reference",
					slog.Int64("campaign_id", id),
					slog.String("date", string(day.Date)))
				continue
			}
			owned := viewerID != "" && viewerID == c.OwnerID
			if c.Status == domain.StatusRejected && !owned {
				continue
			}
			item := port.MonthItem{
				CampaignID: c.ID,
				OwnerID:    c.OwnerID,
				Location:   loc,
				Date:       day.Date,
			}
			if owned {
				status := c.Status
				item.Status = &status
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// TodayView lists today's approved campaigns with their display assets.
// Pending and rejected campaigns are hidden even from their owner here.
// A missing or unreadable asset degrades to empty bytes instead of
// failing the response.
func (p *VisibilityProjector) TodayView(ctx context.Context, origin string) ([]port.TodayItem, error) {
	today := domain.DateOf(time.Now().In(p.tz))
	day, err := p.calendar.Day(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("look up today: %w", err)
	}
	if day == nil {
		return []port.TodayItem{}, nil
	}

	var ids []int64
	for _, id := range day.Slots {
		ids = append(ids, id)
	}
	campaigns, err := p.campaigns.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve campaigns: %w", err)
	}

	namespace := p.namespaceFor(origin)
	items := make([]port.TodayItem, 0, len(ids))
	for _, loc := range domain.Locations() {
		id, ok := day.Slots[loc]
		if !ok {
			continue
		}
		c, ok := campaigns[id]
		if !ok || c.Status != domain.StatusApproved {
			continue
		}
		asset, err := p.assets.Get(ctx, domain.AssetKey(namespace, c.ID, domain.AssetDisplay))
		if err != nil {
			p.logger.Warn("display asset unreadable",
				slog.Int64("campaign_id", c.ID),
				slog.Any("error", err))
			asset = []byte{}
		}
		items = append(items, port.TodayItem{
			CampaignID:   c.ID,
			OwnerID:      c.OwnerID,
			Location:     loc,
			DisplayAsset: asset,
		})
	}
	return items, nil
}

// namespaceFor picks the asset namespace from the caller's declared
// origin. This is an environment-isolation convenience so staging traffic
// never serves production assets; it is not an authorization boundary.
func (p *VisibilityProjector) namespaceFor(origin string) string {
	if origin == "" {
		return p.prodNamespace
	}
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	switch {
	case host == "localhost" || host == "127.0.0.1" || host == "::1":
		return p.devNamespace
	case strings.HasSuffix(host, ".localhost") || strings.HasSuffix(host, ".local"):
		return p.devNamespace
	default:
		return p.prodNamespace
	}
}
