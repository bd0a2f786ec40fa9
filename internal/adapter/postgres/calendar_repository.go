package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// locationColumns maps the closed location enum onto days columns. Only
// these values ever reach SQL text; location input is validated before
// it gets here.
var locationColumns = map[domain.Location]string{
	domain.Location1: "location_1",
	domain.Location2: "location_2",
	domain.Location3: "location_3",
	domain.Location4: "location_4",
	domain.Location5: "location_5",
}

// CalendarRepository implements port.CalendarRepository over the days
// table: one row per date, five nullable campaign references.
type CalendarRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarRepository returns a new repository instance.
func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

// Day returns the row for the given date, or nil when none exists.
func (r *CalendarRepository) Day(ctx context.Context, date domain.Date) (*domain.Day, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT date, location_1, location_2, location_3, location_4, location_5
		 FROM days WHERE date = $1`, date.Time())
	day, err := scanDay(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return day, nil
}

// DaysInMonth returns every existing row of the civil month, ordered by date.
func (r *CalendarRepository) DaysInMonth(ctx context.Context, year int, month time.Month) ([]domain.Day, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.pool.Query(ctx,
		`SELECT date, location_1, location_2, location_3, location_4, location_5
		 FROM days WHERE date >= $1 AND date < $2 ORDER BY date`,
		first, first.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Day, error) {
		day, err := scanDay(row)
		if err != nil {
			return domain.Day{}, err
		}
		return *day, nil
	})
}

// OccupiedDates returns the subset of dates on which the location column
// is populated, regardless of the occupant's moderation status.
func (r *CalendarRepository) OccupiedDates(ctx context.Context, loc domain.Location, dates []domain.Date) ([]domain.Date, error) {
	col, ok := locationColumns[loc]
	if !ok {
		return nil, domain.ErrUnknownLocation
	}
	ts := make([]time.Time, len(dates))
	for i, d := range dates {
		ts[i] = d.Time()
	}
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT date FROM days WHERE date = ANY($1) AND %s IS NOT NULL ORDER BY date`, col), ts)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Date, error) {
		var t time.Time
		if err := row.Scan(&t); err != nil {
			return "", err
		}
		return domain.DateOf(t), nil
	})
}

// ClaimSlot assigns the location to the campaign, creating the day row if
// needed. The conditional upsert is the store-level guard against two
// concurrent bookings both passing the availability pre-check: the losing
// claim affects zero rows and returns port.ErrSlotTaken.
func (r *CalendarRepository) ClaimSlot(ctx context.Context, date domain.Date, loc domain.Location, campaignID int64) error {
	col, ok := locationColumns[loc]
	if !ok {
		return domain.ErrUnknownLocation
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO days (date, %[1]s) VALUES ($1, $2)
		 ON CONFLICT (date) DO UPDATE SET %[1]s = EXCLUDED.%[1]s
		 WHERE days.%[1]s IS NULL`, col),
		date.Time(), campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrSlotTaken
	}
	return nil
}

// ReleaseSlot clears the location only while it is still held by the
// given campaign. The day row itself is never deleted.
func (r *CalendarRepository) ReleaseSlot(ctx context.Context, date domain.Date, loc domain.Location, campaignID int64) error {
	col, ok := locationColumns[loc]
	if !ok {
		return domain.ErrUnknownLocation
	}
	_, err := r.pool.Exec(ctx, fmt.Sprintf(
		`UPDATE days SET %[1]s = NULL WHERE date = $1 AND %[1]s = $2`, col),
		date.Time(), campaignID)
	return err
}

func scanDay(row pgx.Row) (*domain.Day, error) {
	var (
		t     time.Time
		slots [5]*int64
	)
	if err := row.Scan(&t, &slots[0], &slots[1], &slots[2], &slots[3], &slots[4]); err != nil {
		return nil, err
	}
	day := &domain.Day{Date: domain.DateOf(t), Slots: make(map[domain.Location]int64)}
	for i, loc := range domain.Locations() {
		if slots[i] != nil {
			day.Slots[loc] = *slots[i]
		}
	}
	return day, nil
}
