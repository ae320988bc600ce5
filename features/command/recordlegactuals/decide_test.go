package recordlegactuals_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordlegactuals"
)

func Test_Decide_Success_RecordsActuals(t *testing.T) {
	// arrange
	now := time.Now()
	depart := now.Add(-2 * time.Hour)
	arrive := now.Add(-75 * time.Minute)
	history := givenCharterWithPlannedLeg(t, "RES-00042", now)

	command := recordlegactuals.BuildCommand("RES-00042", 1, depart, arrive, decimal.NewFromInt(21), now)

	// act
	result := recordlegactuals.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	actuals, ok := result.Events[0].(core.RouteLegActualsRecorded)
	assert.True(t, ok, "Expected RouteLegActualsRecorded event")
	assert.Equal(t, 1, actuals.LegSequence)
	assert.True(t, actuals.ActualDistanceKm.Equal(decimal.NewFromInt(21)))
}

func Test_Decide_Refused_WhenLegNotPlanned(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenCharterWithPlannedLeg(t, "RES-00042", now)

	command := recordlegactuals.BuildCommand("RES-00042", 7, now.Add(-time.Hour), now, decimal.NewFromInt(12), now)

	// act
	result := recordlegactuals.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrLegNotFound)
}

func Test_Decide_Idempotent_WhenIdenticalActualsOnFile(t *testing.T) {
	// arrange
	now := time.Now()
	depart := now.Add(-2 * time.Hour)
	arrive := now.Add(-75 * time.Minute)
	history := append(
		givenCharterWithPlannedLeg(t, "RES-00042", now),
		core.BuildRouteLegActualsRecorded("RES-00042", 1, depart, arrive, decimal.NewFromInt(21), now.Add(-time.Hour)),
	)

	command := recordlegactuals.BuildCommand("RES-00042", 1, depart, arrive, decimal.NewFromInt(21), now)

	// act
	result := recordlegactuals.Decide(history, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Success_CorrectsEarlierActuals(t *testing.T) {
	// arrange - a new distance on an already recorded leg is a correction, not a repeat
	now := time.Now()
	depart := now.Add(-2 * time.Hour)
	arrive := now.Add(-75 * time.Minute)
	history := append(
		givenCharterWithPlannedLeg(t, "RES-00042", now),
		core.BuildRouteLegActualsRecorded("RES-00042", 1, depart, arrive, decimal.NewFromInt(21), now.Add(-time.Hour)),
	)

	command := recordlegactuals.BuildCommand("RES-00042", 1, depart, arrive, decimal.NewFromInt(24), now)

	// act
	result := recordlegactuals.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	view := core.ReduceCharter(append(history, result.Events...))
	leg, found := view.LegBySequence(1)
	assert.True(t, found)
	assert.True(t, leg.ActualDistanceKm.Equal(decimal.NewFromInt(24)), "latest correction should win")
}

func Test_Decide_Refused_WhenLocked(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenCharterWithPlannedLeg(t, "RES-00042", now),
		core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
	)

	command := recordlegactuals.BuildCommand("RES-00042", 1, now.Add(-time.Hour), now, decimal.NewFromInt(12), now)

	// act
	result := recordlegactuals.Decide(history, command)

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrCharterLocked)
}

func givenCharterWithPlannedLeg(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		core.BuildCharterBooked(
			reserveNumber, "CL-0007", now.Add(48*time.Hour),
			"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
			false, false, "", now.Add(-48*time.Hour),
		),
		core.BuildRouteLegPlanned(
			reserveNumber, 1, "Garage", "Hotel Macdonald",
			now.Add(-3*time.Hour), now.Add(-2*time.Hour), decimal.NewFromInt(18), now.Add(-24*time.Hour),
		),
	}
}
