package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

type bookingEnv struct {
	calendar  *fakeCalendar
	campaigns *fakeCampaigns
	ledger    *fakeLedger
	assets    *fakeAssets
	log       *opLog
	orch      *BookingOrchestrator
}

func newBookingEnv() *bookingEnv {
	env := &bookingEnv{
		calendar:  newFakeCalendar(),
		campaigns: newFakeCampaigns(),
		ledger:    newFakeLedger(),
		assets:    newFakeAssets(),
		log:       &opLog{},
	}
	env.calendar.log = env.log
	env.campaigns.log = env.log
	env.ledger.log = env.log
	env.assets.log = env.log
	env.orch = NewBookingOrchestrator(env.calendar, env.campaigns, env.ledger, env.assets, "prod", discardLogger())
	return env
}

var asset = []byte("\x89PNG fake image bytes")

func TestBookSuccess(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 200
	dates := []string{"2026-09-01", "2026-09-02", "2026-09-03"}

	result, err := env.orch.Book(context.Background(), "alice", "LOCATION_2", dates, asset)
	require.NoError(t, err)
	require.NotNil(t, result)

	// pricing: 3 dates at 50/day per location
	assert.Equal(t, int64(150), result.Cost)
	assert.Equal(t, int64(50), env.ledger.balances["alice"], "debit must match cost exactly")

	c := env.campaigns.records[result.CampaignID]
	assert.Equal(t, "alice", c.OwnerID)
	assert.Equal(t, domain.StatusPending, c.Status)
	assert.Len(t, c.ContentHash, 10)
	assert.Equal(t, domain.ContentHash(asset), c.ContentHash)

	for _, d := range dates {
		assert.Equal(t, result.CampaignID, env.calendar.days[domain.Date(d)][domain.Location2])
	}
	assert.Equal(t, domain.PlaceholderDisplay,
		env.assets.objects[domain.AssetKey("prod", result.CampaignID, domain.AssetDisplay)])
	assert.Equal(t, asset,
		env.assets.objects[domain.AssetKey("prod", result.CampaignID, domain.AssetRaw)])
}

func TestBookDebitRunsLast(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 100

	_, err := env.orch.Book(context.Background(), "alice", "LOCATION_1", []string{"2026-09-01"}, asset)
	require.NoError(t, err)

	require.NotEmpty(t, env.log.ops)
	assert.Equal(t, "debit", env.log.ops[len(env.log.ops)-1])
	assert.Equal(t, "create campaign", env.log.ops[0])
}

func TestBookValidation(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 1000
	ctx := context.Background()

	tests := []struct {
		name     string
		location string
		dates    []string
		asset    []byte
		want     error
	}{
		{"unknown location", "LOCATION_9", []string{"2026-09-01"}, asset, domain.ErrUnknownLocation},
		{"empty dates", "LOCATION_1", nil, asset, domain.ErrEmptyDates},
		{"malformed date", "LOCATION_1", []string{"01.09.2026"}, asset, domain.ErrInvalidDate},
		{"out of range date", "LOCATION_1", []string{"2026-02-30"}, asset, domain.ErrInvalidDate},
		{"empty asset", "LOCATION_1", []string{"2026-09-01"}, nil, domain.ErrEmptyAsset},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.orch.Book(ctx, "alice", tc.location, tc.dates, tc.asset)
			require.ErrorIs(t, err, tc.want)
		})
	}
	// nothing may have been written by rejected requests
	assert.Empty(t, env.campaigns.records)
	assert.Empty(t, env.assets.objects)
	assert.Equal(t, int64(1000), env.ledger.balances["alice"])
}

func TestBookInsufficientFunds(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 100

	_, err := env.orch.Book(context.Background(), "alice", "LOCATION_2",
		[]string{"2026-09-01", "2026-09-02", "2026-09-03"}, asset)

	var insufficient *domain.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(150), insufficient.Required)
	assert.Equal(t, int64(100), insufficient.Available)
	assert.Empty(t, env.campaigns.records)
}

func TestBookUnknownLedgerRecord(t *testing.T) {
	env := newBookingEnv()

	_, err := env.orch.Book(context.Background(), "ghost", "LOCATION_1", []string{"2026-09-01"}, asset)
	require.ErrorIs(t, err, domain.ErrLedgerNotFound)
}

func TestBookSequentialConflict(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 500
	env.ledger.balances["bob"] = 500

	first, err := env.orch.Book(context.Background(), "alice", "LOCATION_1", []string{"2026-09-01"}, asset)
	require.NoError(t, err)

	_, err = env.orch.Book(context.Background(), "bob", "LOCATION_1", []string{"2026-09-01"}, asset)
	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.Date("2026-09-01"), conflict.Date)
	assert.Equal(t, domain.Location1, conflict.Location)

	// the first booking's reservation is untouched
	assert.Equal(t, first.CampaignID, env.calendar.days["2026-09-01"][domain.Location1])
	assert.Equal(t, int64(500), env.ledger.balances["bob"])
}

func TestBookRawUploadFailureCompensates(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 500
	env.assets.putErrOn = ".raw"
	env.assets.putErr = errors.New("object store down")

	_, err := env.orch.Book(context.Background(), "alice", "LOCATION_3", []string{"2026-09-01"}, asset)
	require.ErrorIs(t, err, domain.ErrBookingFailed)

	// no campaign row, no display asset, no day mutation, no debit
	assert.Empty(t, env.campaigns.records)
	assert.Empty(t, env.assets.objects)
	assert.Empty(t, env.calendar.days["2026-09-01"])
	assert.Equal(t, int64(500), env.ledger.balances["alice"])
}

func TestBookClaimFailureCompensatesEarlierClaims(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 500
	env.calendar.claimErr["2026-09-02"] = errors.New("store down")

	_, err := env.orch.Book(context.Background(), "alice", "LOCATION_4",
		[]string{"2026-09-01", "2026-09-02"}, asset)
	require.ErrorIs(t, err, domain.ErrBookingFailed)

	assert.Empty(t, env.calendar.days["2026-09-01"])
	assert.Empty(t, env.campaigns.records)
	assert.Empty(t, env.assets.objects)
	assert.Equal(t, int64(500), env.ledger.balances["alice"])
}

func TestBookConcurrentClaimConflict(t *testing.T) {
	// a slot grabbed between the availability check and the commit is
	// rejected by the store-level claim, not silently overwritten
	env := newBookingEnv()
	env.ledger.balances["alice"] = 500
	env.calendar.claimErr["2026-09-02"] = port.ErrSlotTaken

	_, err := env.orch.Book(context.Background(), "alice", "LOCATION_1",
		[]string{"2026-09-01", "2026-09-02"}, asset)

	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.Date("2026-09-02"), conflict.Date)
	assert.Empty(t, env.calendar.days["2026-09-01"], "earlier claim must be released")
	assert.Equal(t, int64(500), env.ledger.balances["alice"])
}

func TestBookDebitFailureCompensatesEverything(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 500
	env.ledger.debitErr = errors.New("ledger down")

	_, err := env.orch.Book(context.Background(), "alice", "LOCATION_5", []string{"2026-09-01"}, asset)
	require.ErrorIs(t, err, domain.ErrBookingFailed)

	assert.Empty(t, env.campaigns.records)
	assert.Empty(t, env.assets.objects)
	assert.Empty(t, env.calendar.days["2026-09-01"])
}

func TestBookDuplicateDatesCollapse(t *testing.T) {
	env := newBookingEnv()
	env.ledger.balances["alice"] = 500

	result, err := env.orch.Book(context.Background(), "alice", "LOCATION_1",
		[]string{"2026-09-01", "2026-09-01"}, asset)
	require.NoError(t, err)
	assert.Equal(t, int64(50), result.Cost)
}
