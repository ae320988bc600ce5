package adjustdriverpay_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/adjustdriverpay"
)

func Test_Decide_Success_DerivesFullBreakdown(t *testing.T) {
	// arrange - 5.25h at $28/h plus $80 gratuity; $100 float, $37.50 in receipts
	now := time.Now()
	history := givenPreparedStatement(t, "RES-00042", "28", now)

	command := adjustdriverpay.BuildCommand(
		"RES-00042",
		decimal.NewFromFloat(5.25),
		decimal.NewFromInt(80),
		decimal.NewFromInt(20),
		decimal.NewFromInt(100),
		decimal.NewFromFloat(37.50),
		now,
	)

	// act
	result := adjustdriverpay.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	adjusted, ok := result.Events[0].(core.DriverPayAdjusted)
	assert.True(t, ok, "Expected DriverPayAdjusted event")
	assert.True(t, adjusted.TotalPay.Equal(decimal.NewFromInt(227)), "5.25x28+80 = 227, got %s", adjusted.TotalPay)
	assert.True(t, adjusted.FloatBalance.Equal(decimal.NewFromFloat(62.50)), "100-37.50 = 62.50, got %s", adjusted.FloatBalance)
	assert.True(t, adjusted.NetAmountOwed.Equal(decimal.NewFromFloat(164.50)), "227-62.50 = 164.50, got %s", adjusted.NetAmountOwed)
	assert.True(t, adjusted.CashTip.Equal(decimal.NewFromInt(20)), "cash tip rides along without touching the net")
}

func Test_Decide_Success_ReAdjustmentReplacesFigures(t *testing.T) {
	// arrange - statement already adjusted once with different hours
	now := time.Now()
	history := append(
		givenPreparedStatement(t, "RES-00042", "28", now),
		core.BuildDriverPayAdjusted("RES-00042",
			decimal.NewFromInt(5), decimal.NewFromInt(80), decimal.Zero,
			decimal.NewFromInt(100), decimal.Zero,
			decimal.NewFromInt(220), decimal.NewFromInt(100), decimal.NewFromInt(120), now.Add(-time.Hour)),
	)

	command := adjustdriverpay.BuildCommand(
		"RES-00042", decimal.NewFromInt(6), decimal.NewFromInt(80), decimal.Zero,
		decimal.NewFromInt(100), decimal.Zero, now,
	)

	// act
	result := adjustdriverpay.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	adjusted := result.Events[0].(core.DriverPayAdjusted)
	assert.True(t, adjusted.TotalPay.Equal(decimal.NewFromInt(248)), "6x28+80 = 248, got %s", adjusted.TotalPay)
}

func Test_Decide_Idempotent_WhenIdenticalAdjustmentOnFile(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenPreparedStatement(t, "RES-00042", "28", now),
		core.BuildDriverPayAdjusted("RES-00042",
			decimal.NewFromInt(5), decimal.NewFromInt(80), decimal.Zero,
			decimal.NewFromInt(100), decimal.Zero,
			decimal.NewFromInt(220), decimal.NewFromInt(100), decimal.NewFromInt(120), now.Add(-time.Hour)),
	)

	command := adjustdriverpay.BuildCommand(
		"RES-00042", decimal.NewFromInt(5), decimal.NewFromInt(80), decimal.Zero,
		decimal.NewFromInt(100), decimal.Zero, now,
	)

	// act
	result := adjustdriverpay.Decide(history, command)

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_BusinessRules(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		hours       decimal.Decimal
		expectedErr error
	}{
		{
			name:        "charter does not exist",
			history:     core.DomainEvents{},
			hours:       decimal.NewFromInt(5),
			expectedErr: core.ErrCharterNotFound,
		},
		{
			name:        "statement never prepared",
			history:     core.DomainEvents{givenBooked(t, "RES-00042", now)},
			hours:       decimal.NewFromInt(5),
			expectedErr: core.ErrPayNotPrepared,
		},
		{
			name: "statement already approved",
			history: append(
				givenPreparedStatement(t, "RES-00042", "28", now),
				core.BuildDriverPayApproved("RES-00042", "ops.mgr", now.Add(-time.Minute)),
			),
			hours:       decimal.NewFromInt(5),
			expectedErr: core.ErrPayAlreadyApproved,
		},
		{
			name: "statement already settled",
			history: append(
				givenPreparedStatement(t, "RES-00042", "28", now),
				core.BuildDriverPayApproved("RES-00042", "ops.mgr", now.Add(-2*time.Minute)),
				core.BuildDriverPaySettled("RES-00042", "payroll run 2025-11", now.Add(-time.Minute)),
			),
			hours:       decimal.NewFromInt(5),
			expectedErr: core.ErrPayAlreadyApproved,
		},
		{
			name:        "negative payable hours",
			history:     givenPreparedStatement(t, "RES-00042", "28", now),
			hours:       decimal.NewFromInt(-1),
			expectedErr: core.ErrInvalidAmount,
		},
		{
			name: "charter is locked",
			history: append(
				givenPreparedStatement(t, "RES-00042", "28", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			),
			hours:       decimal.NewFromInt(5),
			expectedErr: core.ErrCharterLocked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command := adjustdriverpay.BuildCommand(
				"RES-00042", tc.hours, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, now,
			)

			// act
			result := adjustdriverpay.Decide(tc.history, command)

			// assert
			assert.Equal(t, "refused", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.False(t, result.HasEventsToAppend())
		})
	}
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(-24*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-72*time.Hour),
	)
}

func givenPreparedStatement(t *testing.T, reserveNumber core.ReserveNumberString, payRate string, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		givenBooked(t, reserveNumber, now),
		core.BuildCharterConfirmed(reserveNumber, decimal.NewFromInt(200), now.Add(-36*time.Hour)),
		core.BuildDispatchAcknowledged(reserveNumber, "EMP-0019", "VEH-12", now.Add(-26*time.Hour)),
		core.BuildServiceCheckpointReached(reserveNumber, core.StatusOnDuty, now.Add(-25*time.Hour)),
		core.BuildCharterCompleted(reserveNumber, now.Add(-20*time.Hour), now.Add(-20*time.Hour)),
		core.BuildInvoiceOpened(reserveNumber, "INV-"+reserveNumber, now.Add(-20*time.Hour), now.Add(240*time.Hour), now.Add(-20*time.Hour)),
		core.BuildDriverPayPrepared(reserveNumber, "EMP-0019", decimal.RequireFromString(payRate),
			decimal.NewFromInt(5), decimal.NewFromInt(80), decimal.NewFromInt(100), now.Add(-19*time.Hour)),
	}
}
