package recordcharge_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/recordcharge"
)

func Test_Decide_Success_TaxableLineCarriesGST(t *testing.T) {
	// arrange - 2h extra time at $95/h is $190 plus 5% GST
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordcharge.BuildCommand(
		"RES-00042", "CHG-1", core.ChargeExtraTime, "overtime at venue",
		decimal.NewFromInt(2), decimal.NewFromInt(95), true, now,
	)

	// act
	result := recordcharge.Decide(history, command, core.DefaultTaxPolicy())

	// assert
	assert.Equal(t, "success", result.Outcome)

	charge, ok := result.Events[0].(core.ChargeRecorded)
	assert.True(t, ok, "Expected ChargeRecorded event")
	assert.True(t, charge.LineTotal.Equal(decimal.NewFromInt(190)), "got %s", charge.LineTotal)
	assert.True(t, charge.GSTAmount.Equal(decimal.NewFromFloat(9.50)), "5%% of 190 is 9.50, got %s", charge.GSTAmount)
}

func Test_Decide_Success_NonTaxableLineHasZeroGST(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordcharge.BuildCommand(
		"RES-00042", "CHG-1", core.ChargeGratuity, "driver gratuity",
		decimal.NewFromInt(1), decimal.NewFromInt(80), false, now,
	)

	// act
	result := recordcharge.Decide(history, command, core.DefaultTaxPolicy())

	// assert
	assert.Equal(t, "success", result.Outcome)

	charge := result.Events[0].(core.ChargeRecorded)
	assert.True(t, charge.GSTAmount.IsZero())
}

func Test_Decide_Success_NegativeDiscountLine(t *testing.T) {
	// arrange - discounts are ordinary lines with negative totals
	now := time.Now()
	history := core.DomainEvents{givenBooked(t, "RES-00042", now)}

	command := recordcharge.BuildCommand(
		"RES-00042", "CHG-1", core.ChargeDiscount, "repeat client discount",
		decimal.NewFromInt(1), decimal.NewFromInt(-100), true, now,
	)

	// act
	result := recordcharge.Decide(history, command, core.DefaultTaxPolicy())

	// assert
	assert.Equal(t, "success", result.Outcome)

	charge := result.Events[0].(core.ChargeRecorded)
	assert.True(t, charge.LineTotal.Equal(decimal.NewFromInt(-100)))
	assert.True(t, charge.GSTAmount.Equal(decimal.NewFromInt(-5)), "negative lines carry negative GST, got %s", charge.GSTAmount)
}

func Test_Decide_Success_ChargeOnPlaceholderCharter(t *testing.T) {
	// arrange - audit artifacts exist to carry adjustment lines
	now := time.Now()
	history := core.DomainEvents{
		core.BuildCharterBooked(
			"RES-90001", "CL-0007", now, "", "", decimal.Zero,
			false, true, "year-end adjustment shell", now.Add(-time.Hour),
		),
	}

	command := recordcharge.BuildCommand(
		"RES-90001", "CHG-1", core.ChargeRounding, "GST rounding correction",
		decimal.NewFromInt(1), decimal.NewFromFloat(0.02), false, now,
	)

	// act
	result := recordcharge.Decide(history, command, core.DefaultTaxPolicy())

	// assert
	assert.Equal(t, "success", result.Outcome)
}

func Test_Decide_Idempotent_WhenChargeIDOnFile(t *testing.T) {
	// arrange - the id was used once, even though the line was later removed
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildChargeRecorded("RES-00042", "CHG-1", core.ChargeBeverage, "bar stock",
			decimal.NewFromInt(1), decimal.NewFromInt(45), true,
			decimal.NewFromInt(45), decimal.NewFromFloat(2.25), now.Add(-2*time.Hour)),
		core.BuildChargeRemoved("RES-00042", "CHG-1", decimal.NewFromFloat(47.25), "entered twice", "acct", now.Add(-time.Hour)),
	}

	command := recordcharge.BuildCommand(
		"RES-00042", "CHG-1", core.ChargeBeverage, "bar stock",
		decimal.NewFromInt(1), decimal.NewFromInt(45), true, now,
	)

	// act
	result := recordcharge.Decide(history, command, core.DefaultTaxPolicy())

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_BusinessRules(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		chargeType  core.ChargeType
		expectedErr error
	}{
		{
			name:        "charter does not exist",
			history:     core.DomainEvents{},
			chargeType:  core.ChargeCharterFee,
			expectedErr: core.ErrCharterNotFound,
		},
		{
			name:        "unknown charge type",
			history:     core.DomainEvents{givenBooked(t, "RES-00042", now)},
			chargeType:  "parking_ticket",
			expectedErr: core.ErrUnknownChargeType,
		},
		{
			name: "invoice already finalized",
			history: core.DomainEvents{
				givenBooked(t, "RES-00042", now),
				core.BuildInvoiceFinalized("RES-00042", "INV-RES-00042",
					decimal.NewFromInt(800), decimal.NewFromInt(40), decimal.Zero,
					decimal.NewFromInt(840), "", now.Add(-time.Hour)),
			},
			chargeType:  core.ChargeExtraTime,
			expectedErr: core.ErrInvoiceFinalized,
		},
		{
			name: "charter was cancelled",
			history: core.DomainEvents{
				givenBooked(t, "RES-00042", now),
				core.BuildCharterCancelled("RES-00042", "client request", 0, decimal.Zero, now.Add(-time.Hour)),
			},
			chargeType:  core.ChargeCharterFee,
			expectedErr: core.ErrInvalidTransition,
		},
		{
			name: "charter is locked",
			history: core.DomainEvents{
				givenBooked(t, "RES-00042", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			},
			chargeType:  core.ChargeCharterFee,
			expectedErr: core.ErrCharterLocked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command := recordcharge.BuildCommand(
				"RES-00042", "CHG-1", tc.chargeType, "",
				decimal.NewFromInt(1), decimal.NewFromInt(100), true, now,
			)

			// act
			result := recordcharge.Decide(tc.history, command, core.DefaultTaxPolicy())

			// assert
			assert.Equal(t, "refused", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.False(t, result.HasEventsToAppend())
		})
	}
}

func Test_Decide_Success_ChargeAfterVoidReopensBilling(t *testing.T) {
	// arrange - voiding the invoice lifts the freeze so corrections can be billed
	now := time.Now()
	history := core.DomainEvents{
		givenBooked(t, "RES-00042", now),
		core.BuildInvoiceFinalized("RES-00042", "INV-RES-00042",
			decimal.NewFromInt(800), decimal.NewFromInt(40), decimal.Zero,
			decimal.NewFromInt(840), "", now.Add(-2*time.Hour)),
		core.BuildInvoiceVoided("RES-00042", "INV-RES-00042", "client disputed hours", "acct.mgr", now.Add(-time.Hour)),
	}

	command := recordcharge.BuildCommand(
		"RES-00042", "CHG-2", core.ChargeExtraTime, "corrected overtime",
		decimal.NewFromInt(1), decimal.NewFromInt(95), true, now,
	)

	// act
	result := recordcharge.Decide(history, command, core.DefaultTaxPolicy())

	// assert
	assert.Equal(t, "success", result.Outcome)
}

func givenBooked(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(48*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-48*time.Hour),
	)
}
