package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// opLog records the order of side effects across fakes so tests can
// assert saga ordering (e.g. the debit always comes last).
type opLog struct {
	ops []string
}

func (l *opLog) add(op string) {
	if l != nil {
		l.ops = append(l.ops, op)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCalendar struct {
	days map[domain.Date]map[domain.Location]int64
	// claimErr injects a failure for a specific date's claim.
	claimErr map[domain.Date]error
	log      *opLog
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{
		days:     make(map[domain.Date]map[domain.Location]int64),
		claimErr: make(map[domain.Date]error),
	}
}

func (f *fakeCalendar) Day(_ context.Context, date domain.Date) (*domain.Day, error) {
	slots, ok := f.days[date]
	if !ok {
		return nil, nil
	}
	day := &domain.Day{Date: date, Slots: make(map[domain.Location]int64, len(slots))}
	for loc, id := range slots {
		day.Slots[loc] = id
	}
	return day, nil
}

func (f *fakeCalendar) DaysInMonth(_ context.Context, year int, month time.Month) ([]domain.Day, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	var out []domain.Day
	for date, slots := range f.days {
		if !strings.HasPrefix(string(date), prefix) {
			continue
		}
		day := domain.Day{Date: date, Slots: make(map[domain.Location]int64, len(slots))}
		for loc, id := range slots {
			day.Slots[loc] = id
		}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeCalendar) OccupiedDates(_ context.Context, loc domain.Location, dates []domain.Date) ([]domain.Date, error) {
	var out []domain.Date
	for _, date := range dates {
		if _, ok := f.days[date][loc]; ok {
			out = append(out, date)
		}
	}
	return out, nil
}

func (f *fakeCalendar) ClaimSlot(_ context.Context, date domain.Date, loc domain.Location, campaignID int64) error {
	if err, ok := f.claimErr[date]; ok {
		return err
	}
	if _, ok := f.days[date][loc]; ok {
		return port.ErrSlotTaken
	}
	if f.days[date] == nil {
		f.days[date] = make(map[domain.Location]int64)
	}
	f.days[date][loc] = campaignID
	f.log.add(fmt.Sprintf("claim %s", date))
	return nil
}

func (f *fakeCalendar) ReleaseSlot(_ context.Context, date domain.Date, loc domain.Location, campaignID int64) error {
	if f.days[date][loc] == campaignID {
		delete(f.days[date], loc)
	}
	f.log.add(fmt.Sprintf("release %s", date))
	return nil
}

type fakeCampaigns struct {
	nextID    int64
	records   map[int64]domain.Campaign
	createErr error
	log       *opLog
}

func newFakeCampaigns() *fakeCampaigns {
	return &fakeCampaigns{records: make(map[int64]domain.Campaign)}
}

func (f *fakeCampaigns) put(c domain.Campaign) {
	f.records[c.ID] = c
	if c.ID > f.nextID {
		f.nextID = c.ID
	}
}

func (f *fakeCampaigns) Create(_ context.Context, ownerID, contentHash string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.records[f.nextID] = domain.Campaign{
		ID:          f.nextID,
		OwnerID:     ownerID,
		ContentHash: contentHash,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	f.log.add("create campaign")
	return f.nextID, nil
}

func (f *fakeCampaigns) Delete(_ context.Context, id int64) error {
	delete(f.records, id)
	f.log.add("delete campaign")
	return nil
}

func (f *fakeCampaigns) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	c, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCampaigns) GetMany(_ context.Context, ids []int64) (map[int64]domain.Campaign, error) {
	out := make(map[int64]domain.Campaign)
	for _, id := range ids {
		if c, ok := f.records[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeCampaigns) UpdateStatus(_ context.Context, id int64, status domain.ModerationStatus) error {
	c, ok := f.records[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	c.Status = status
	f.records[id] = c
	return nil
}

type fakeLedger struct {
	balances map[string]int64
	debitErr error
	log      *opLog
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[string]int64)}
}

func (f *fakeLedger) Balance(_ context.Context, userID string) (int64, error) {
	b, ok := f.balances[userID]
	if !ok {
		return 0, domain.ErrLedgerNotFound
	}
	return b, nil
}

func (f *fakeLedger) Debit(_ context.Context, userID string, amount int64) error {
	if f.debitErr != nil {
		return f.debitErr
	}
	b, ok := f.balances[userID]
	if !ok {
		return domain.ErrLedgerNotFound
	}
	if b < amount {
		return &domain.InsufficientFundsError{Required: amount, Available: b}
	}
	f.balances[userID] = b - amount
	f.log.add("debit")
	return nil
}

func (f *fakeLedger) Credit(_ context.Context, userID string, amount int64) error {
	if _, ok := f.balances[userID]; !ok {
		return domain.ErrLedgerNotFound
	}
	f.balances[userID] += amount
	return nil
}

type fakeAssets struct {
	objects map[string][]byte
	// putErr fails uploads whose key contains the substring.
	putErrOn string
	putErr   error
	getErr   error
	log      *opLog
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{objects: make(map[string][]byte)}
}

func (f *fakeAssets) Put(_ context.Context, key string, data []byte, _ string) error {
	if f.putErr != nil && strings.Contains(key, f.putErrOn) {
		return f.putErr
	}
	f.objects[key] = data
	f.log.add(fmt.Sprintf("put %s", key))
	return nil
}

func (f *fakeAssets) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return data, nil
}

func (f *fakeAssets) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	f.log.add(fmt.Sprintf("delete %s", key))
	return nil
}
