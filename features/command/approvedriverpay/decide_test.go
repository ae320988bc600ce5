package approvedriverpay_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/approvedriverpay"
)

func Test_Decide_Success_ApprovesPreparedStatement(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenPreparedStatement(t, "RES-00042", now)

	command := approvedriverpay.BuildCommand("RES-00042", "ops.mgr", now)

	// act
	result := approvedriverpay.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	approved, ok := result.Events[0].(core.DriverPayApproved)
	assert.True(t, ok, "Expected DriverPayApproved event")
	assert.Equal(t, "ops.mgr", approved.ApprovedBy)
}

func Test_Decide_Success_ApprovesAdjustedStatement(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenPreparedStatement(t, "RES-00042", now),
		core.BuildDriverPayAdjusted("RES-00042",
			decimal.NewFromInt(5), decimal.NewFromInt(80), decimal.Zero,
			decimal.NewFromInt(100), decimal.Zero,
			decimal.NewFromInt(220), decimal.NewFromInt(100), decimal.NewFromInt(120), now.Add(-time.Hour)),
	)

	// act
	result := approvedriverpay.Decide(history, approvedriverpay.BuildCommand("RES-00042", "ops.mgr", now))

	// assert
	assert.Equal(t, "success", result.Outcome)
}

func Test_Decide_Idempotent_WhenAlreadyApproved(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenPreparedStatement(t, "RES-00042", now),
		core.BuildDriverPayApproved("RES-00042", "ops.mgr", now.Add(-time.Minute)),
	)

	// act
	result := approvedriverpay.Decide(history, approvedriverpay.BuildCommand("RES-00042", "ops.mgr", now))

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_WhenNeverPrepared(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	// act
	result := approvedriverpay.Decide(history, approvedriverpay.BuildCommand("RES-00042", "ops.mgr", now))

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrPayNotPrepared)
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(-24*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-72*time.Hour),
	)
}

func givenPreparedStatement(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		givenBooked(t, reserveNumber, now),
		core.BuildCharterConfirmed(reserveNumber, decimal.NewFromInt(200), now.Add(-36*time.Hour)),
		core.BuildDispatchAcknowledged(reserveNumber, "EMP-0019", "VEH-12", now.Add(-26*time.Hour)),
		core.BuildServiceCheckpointReached(reserveNumber, core.StatusOnDuty, now.Add(-25*time.Hour)),
		core.BuildCharterCompleted(reserveNumber, now.Add(-20*time.Hour), now.Add(-20*time.Hour)),
		core.BuildInvoiceOpened(reserveNumber, "INV-"+reserveNumber, now.Add(-20*time.Hour), now.Add(240*time.Hour), now.Add(-20*time.Hour)),
		core.BuildDriverPayPrepared(reserveNumber, "EMP-0019", decimal.NewFromInt(28),
			decimal.NewFromInt(5), decimal.NewFromInt(80), decimal.NewFromInt(100), now.Add(-19*time.Hour)),
	}
}
