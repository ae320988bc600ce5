package hossummary_test

import (
	"context"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recorddutyday"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/hossummary"
	"github.com/arrowlimo/arrow-limo-sub005/shell/snapshot"
)

func Test_SnapshotWrappedHOSSummary_SeedsTheSnapshotOnFirstQuery(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	wrapped := givenSnapshotWrappedHandler(t, journal)
	givenRecordedDutyDay(ctx, t, journal, "DR-301", dutyClock(), 10*time.Hour)
	query := hossummary.BuildQuery("DR-301", core.ToDutyDate(dutyClock()))

	// act - the first query misses, falls back and seeds the snapshot
	first, err := wrapped.Handle(ctx, query)

	// assert
	assert.NoError(t, err)
	assert.Len(t, first.Days, 1)
	assert.True(t, first.WindowHours.Equal(decimal.NewFromInt(10)), "got %s", first.WindowHours)
	assert.Equal(t, uint(1), first.GetSequenceNumber())

	saved, err := journal.LoadSnapshot(ctx, wrapped.BuildSnapshotType(query), hossummary.BuildDutyScope(query).Hash())
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, uint(1), saved.SequenceNumber)
}

func Test_SnapshotWrappedHOSSummary_AppliesNewDutyDaysOnTopOfTheSnapshot(t *testing.T) {
	// arrange - seed the snapshot, then let another duty day land
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	wrapped := givenSnapshotWrappedHandler(t, journal)
	givenRecordedDutyDay(ctx, t, journal, "DR-301", dutyClock(), 10*time.Hour)

	first, err := wrapped.Handle(ctx, hossummary.BuildQuery("DR-301", core.ToDutyDate(dutyClock())))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), first.GetSequenceNumber())

	nextDay := dutyClock().Add(24 * time.Hour)
	givenRecordedDutyDay(ctx, t, journal, "DR-301", nextDay, 9*time.Hour)

	// act - the second query resumes from the snapshot and folds only the new day
	query := hossummary.BuildQuery("DR-301", core.ToDutyDate(nextDay))
	second, err := wrapped.Handle(ctx, query)

	// assert
	assert.NoError(t, err)
	assert.Len(t, second.Days, 2)
	assert.True(t, second.WindowHours.Equal(decimal.NewFromInt(19)), "got %s", second.WindowHours)
	assert.Equal(t, uint(2), second.GetSequenceNumber())

	saved, err := journal.LoadSnapshot(ctx, wrapped.BuildSnapshotType(query), hossummary.BuildDutyScope(query).Hash())
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, uint(2), saved.SequenceNumber)

	var cached hossummary.HOSSummary
	assert.NoError(t, jsoniter.ConfigFastest.Unmarshal(saved.Data, &cached))
	assert.Len(t, cached.Days, 2)
}

func Test_SnapshotWrappedHOSSummary_ServesAnyWindowEndFromOneSnapshot(t *testing.T) {
	// arrange - one old duty day, one recent, snapshot seeded for the recent window
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	wrapped := givenSnapshotWrappedHandler(t, journal)

	earlier := dutyClock().AddDate(0, 0, -20)
	givenRecordedDutyDay(ctx, t, journal, "DR-301", earlier, 12*time.Hour)
	givenRecordedDutyDay(ctx, t, journal, "DR-301", dutyClock(), 10*time.Hour)

	recent, err := wrapped.Handle(ctx, hossummary.BuildQuery("DR-301", core.ToDutyDate(dutyClock())))
	assert.NoError(t, err)
	assert.True(t, recent.WindowHours.Equal(decimal.NewFromInt(10)), "the old day is outside this window, got %s", recent.WindowHours)

	// act - ask for the standing back when the old day happened
	backThen, err := wrapped.Handle(ctx, hossummary.BuildQuery("DR-301", core.ToDutyDate(earlier)))

	// assert
	assert.NoError(t, err)
	assert.Len(t, backThen.Days, 2)
	assert.True(t, backThen.WindowHours.Equal(decimal.NewFromInt(12)), "got %s", backThen.WindowHours)
	assert.Equal(t, uint(2), backThen.GetSequenceNumber())
}

func givenSnapshotWrappedHandler(
	t *testing.T,
	journal *memoryengine.Journal,
) *snapshot.GenericSnapshotWrapper[hossummary.Query, hossummary.HOSSummary] {
	t.Helper()

	wrapped, err := snapshot.NewGenericSnapshotWrapper[hossummary.Query, hossummary.HOSSummary](
		hossummary.NewQueryHandler(journal),
		hossummary.ProjectHOSSummary,
		hossummary.BuildDutyScope,
	)
	assert.NoError(t, err)

	return wrapped
}

func givenRecordedDutyDay(
	ctx context.Context,
	t *testing.T,
	journal *memoryengine.Journal,
	driverID core.DriverIDString,
	onDutyAt time.Time,
	length time.Duration,
) {
	t.Helper()

	handler := recorddutyday.NewCommandHandler(journal)
	command := recorddutyday.BuildCommand(driverID, onDutyAt, onDutyAt.Add(length), 0, false, "", onDutyAt.Add(length))

	_, err := handler.Handle(ctx, command)
	assert.NoError(t, err)
}

func dutyClock() time.Time {
	return time.Date(2025, time.March, 10, 6, 0, 0, 0, time.UTC)
}
