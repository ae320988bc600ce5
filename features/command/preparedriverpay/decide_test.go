package preparedriverpay_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/preparedriverpay"
)

func Test_Decide_Success_PrefersDutyDayHours(t *testing.T) {
	// arrange - 7.5h duty day on the service date beats route actuals
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		core.BuildRouteLegPlanned("RES-00042", 1, "Garage", "Hotel Macdonald",
			pickup.Add(-time.Hour), pickup, decimal.NewFromInt(18), pickup.Add(-24*time.Hour)),
		core.BuildRouteLegActualsRecorded("RES-00042", 1,
			pickup.Add(-time.Hour), pickup.Add(10*time.Minute), decimal.NewFromInt(19), now.Add(-time.Hour)),
		core.BuildDutyDayRecorded("EMP-0019", "2025-11-03",
			pickup.Add(-4*time.Hour), pickup.Add(210*time.Minute), 0,
			decimal.NewFromFloat(7.5), false, "", core.HOSCompliant, decimal.NewFromFloat(7.5), now.Add(-time.Hour)),
	)

	command := preparedriverpay.BuildCommand("RES-00042", decimal.NewFromInt(100), now)

	// act
	result := preparedriverpay.Decide(history, command, decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "success", result.Outcome)

	prepared, ok := result.Events[0].(core.DriverPayPrepared)
	assert.True(t, ok, "Expected DriverPayPrepared event")
	assert.Equal(t, "EMP-0019", prepared.DriverID)
	assert.True(t, prepared.PayRate.Equal(decimal.NewFromInt(28)))
	assert.True(t, prepared.SuggestedHours.Equal(decimal.NewFromFloat(7.5)),
		"duty day hours must win over route minutes, got %s", prepared.SuggestedHours)
	assert.True(t, prepared.FloatReceived.Equal(decimal.NewFromInt(100)))
}

func Test_Decide_Success_FallsBackToActualRouteMinutes(t *testing.T) {
	// arrange - no duty day; 70 actual minutes round up to 1.25h
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		core.BuildRouteLegPlanned("RES-00042", 1, "Garage", "Hotel Macdonald",
			pickup.Add(-time.Hour), pickup.Add(30*time.Minute), decimal.NewFromInt(18), pickup.Add(-24*time.Hour)),
		core.BuildRouteLegActualsRecorded("RES-00042", 1,
			pickup.Add(-time.Hour), pickup.Add(10*time.Minute), decimal.NewFromInt(19), now.Add(-time.Hour)),
	)

	command := preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now)

	// act
	result := preparedriverpay.Decide(history, command, decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "success", result.Outcome)

	prepared := result.Events[0].(core.DriverPayPrepared)
	assert.True(t, prepared.SuggestedHours.Equal(decimal.NewFromFloat(1.25)),
		"70 actual minutes round up to 1.25h, got %s", prepared.SuggestedHours)
}

func Test_Decide_Success_FallsBackToPlannedRouteMinutes(t *testing.T) {
	// arrange - no duty day, no actuals; 90 planned minutes are 1.5h
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		core.BuildRouteLegPlanned("RES-00042", 1, "Garage", "Hotel Macdonald",
			pickup.Add(-time.Hour), pickup.Add(30*time.Minute), decimal.NewFromInt(18), pickup.Add(-24*time.Hour)),
	)

	command := preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now)

	// act
	result := preparedriverpay.Decide(history, command, decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "success", result.Outcome)

	prepared := result.Events[0].(core.DriverPayPrepared)
	assert.True(t, prepared.SuggestedHours.Equal(decimal.NewFromFloat(1.5)), "got %s", prepared.SuggestedHours)
}

func Test_Decide_Success_SuggestsGratuityFromCharge(t *testing.T) {
	// arrange
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		givenGratuityCharge(t, "RES-00042", "80", now.Add(-time.Hour)),
	)

	// act
	result := preparedriverpay.Decide(history, preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now), decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "success", result.Outcome)

	prepared := result.Events[0].(core.DriverPayPrepared)
	assert.True(t, prepared.SuggestedGratuity.Equal(decimal.NewFromInt(80)))
}

func Test_Decide_Success_ForfeitedGratuityZeroesSuggestion(t *testing.T) {
	// arrange - major complaint on file forfeits the gratuity line
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		givenGratuityCharge(t, "RES-00042", "80", now.Add(-2*time.Hour)),
		core.BuildIncidentRecorded("RES-00042", "INC-1", "EMP-0019", core.IncidentComplaint, core.SeverityMajor,
			"client refused to tip after dispute", decimal.Zero, true, true, now.Add(-time.Hour)),
	)

	// act
	result := preparedriverpay.Decide(history, preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now), decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "success", result.Outcome)

	prepared := result.Events[0].(core.DriverPayPrepared)
	assert.True(t, prepared.SuggestedGratuity.IsZero(), "forfeiture must zero the suggestion")
}

func Test_Decide_Idempotent_WhenStatementAlreadyPrepared(t *testing.T) {
	// arrange
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		core.BuildDriverPayPrepared("RES-00042", "EMP-0019", decimal.NewFromInt(28),
			decimal.NewFromInt(4), decimal.Zero, decimal.Zero, now.Add(-time.Hour)),
	)

	// act
	result := preparedriverpay.Decide(history, preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now), decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_BeforeServiceCompletes(t *testing.T) {
	// arrange - dispatched but not completed
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now.Add(2*time.Hour)),
		core.BuildCharterConfirmed("RES-00042", decimal.NewFromInt(200), now.Add(-24*time.Hour)),
		core.BuildDispatchAcknowledged("RES-00042", "EMP-0019", "VEH-12", now.Add(-time.Hour)),
	}

	// act
	result := preparedriverpay.Decide(history, preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now), decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrInvalidTransition)
}

func Test_Decide_Refused_WhenLocked(t *testing.T) {
	// arrange
	pickup := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	now := pickup.Add(12 * time.Hour)
	history := append(
		givenCompletedCharter(t, "RES-00042", pickup),
		core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
	)

	// act
	result := preparedriverpay.Decide(history, preparedriverpay.BuildCommand("RES-00042", decimal.Zero, now), decimal.NewFromInt(28))

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrCharterLocked)
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, pickup time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", pickup,
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", pickup.Add(-48*time.Hour),
	)
}

func givenCompletedCharter(t *testing.T, reserveNumber core.ReserveNumberString, pickup time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		givenBooked(t, reserveNumber, pickup),
		core.BuildCharterConfirmed(reserveNumber, decimal.NewFromInt(200), pickup.Add(-24*time.Hour)),
		core.BuildDispatchAcknowledged(reserveNumber, "EMP-0019", "VEH-12", pickup.Add(-2*time.Hour)),
		core.BuildServiceCheckpointReached(reserveNumber, core.StatusOnDuty, pickup.Add(-time.Hour)),
		core.BuildCharterCompleted(reserveNumber, pickup.Add(4*time.Hour), pickup.Add(4*time.Hour)),
		core.BuildInvoiceOpened(reserveNumber, "INV-"+reserveNumber, pickup.Add(4*time.Hour), pickup.Add(34*24*time.Hour), pickup.Add(4*time.Hour)),
	}
}

func givenGratuityCharge(t *testing.T, reserveNumber core.ReserveNumberString, amount string, at time.Time) core.DomainEvent {
	t.Helper()

	total := decimal.RequireFromString(amount)

	return core.BuildChargeRecorded(
		reserveNumber, "CHG-GRAT", core.ChargeGratuity, "driver gratuity",
		decimal.NewFromInt(1), total, false, total, decimal.Zero, at,
	)
}
