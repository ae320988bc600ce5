package removecharge_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/removecharge"
)

func Test_Decide_Success_RemovesChargeWithTaxInclusiveAmount(t *testing.T) {
	// arrange - $190 line plus $9.50 GST comes off the balance as $199.50
	now := time.Now()
	history := givenCharterWithCharge(t, "RES-00042", now)

	command := removecharge.BuildCommand("RES-00042", "CHG-1", "acct", "entered twice", now)

	// act
	result := removecharge.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)

	removed, ok := result.Events[0].(core.ChargeRemoved)
	assert.True(t, ok, "Expected ChargeRemoved event")
	assert.Equal(t, "CHG-1", removed.ChargeID)
	assert.True(t, removed.Amount.Equal(decimal.NewFromFloat(199.50)), "got %s", removed.Amount)
	assert.Equal(t, "acct", removed.RemovedBy)

	view := core.ReduceCharter(append(history, result.Events...))
	assert.True(t, view.InvoiceTotal().IsZero(), "removing the only line zeroes the balance")
}

func Test_Decide_Idempotent_WhenChargeAlreadyRemoved(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenCharterWithCharge(t, "RES-00042", now),
		core.BuildChargeRemoved("RES-00042", "CHG-1", decimal.NewFromFloat(199.50), "entered twice", "acct", now.Add(-time.Hour)),
	)

	// act
	result := removecharge.Decide(history, removecharge.BuildCommand("RES-00042", "CHG-1", "acct", "entered twice", now))

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Error_RefusalsLeaveAuditTrail(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name          string
		history       core.DomainEvents
		chargeID      string
		expectedErr   error
		refusalReason string
	}{
		{
			name:          "charge does not exist",
			history:       givenCharterWithCharge(t, "RES-00042", now),
			chargeID:      "CHG-9",
			expectedErr:   core.ErrChargeNotFound,
			refusalReason: "charge not found",
		},
		{
			name: "charter is locked",
			history: append(
				givenCharterWithCharge(t, "RES-00042", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			),
			chargeID:      "CHG-1",
			expectedErr:   core.ErrCharterLocked,
			refusalReason: "charter is locked",
		},
		{
			name: "invoice is finalized",
			history: append(
				givenCharterWithCharge(t, "RES-00042", now),
				core.BuildInvoiceFinalized("RES-00042", "INV-RES-00042",
					decimal.NewFromInt(190), decimal.NewFromFloat(9.50), decimal.Zero,
					decimal.NewFromFloat(199.50), "", now.Add(-time.Minute)),
			),
			chargeID:      "CHG-1",
			expectedErr:   core.ErrInvoiceFinalized,
			refusalReason: "invoice is finalized",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := removecharge.Decide(tc.history, removecharge.BuildCommand("RES-00042", tc.chargeID, "acct", "cleanup", now))

			// assert
			assert.Equal(t, "error", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.Len(t, result.Events, 1, "refusal must still append an audit event")

			refused, ok := result.Events[0].(core.ChargeRemovalRefused)
			assert.True(t, ok, "Expected ChargeRemovalRefused event")
			assert.Equal(t, tc.refusalReason, refused.RefusalReason)
			assert.Equal(t, "acct", refused.RequestedBy)
		})
	}
}

func Test_Decide_Refused_WithoutAuditWhenCharterUnknown(t *testing.T) {
	// act
	result := removecharge.Decide(core.DomainEvents{}, removecharge.BuildCommand("RES-00042", "CHG-1", "acct", "cleanup", time.Now()))

	// assert
	assert.Equal(t, "refused", result.Outcome)
	assert.ErrorIs(t, result.HasError(), core.ErrCharterNotFound)
	assert.False(t, result.HasEventsToAppend())
}

func givenCharterWithCharge(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		core.BuildCharterBooked(
			reserveNumber, "CL-0007", now.Add(48*time.Hour),
			"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
			false, false, "", now.Add(-48*time.Hour),
		),
		core.BuildChargeRecorded(reserveNumber, "CHG-1", core.ChargeExtraTime, "overtime at venue",
			decimal.NewFromInt(2), decimal.NewFromInt(95), true,
			decimal.NewFromInt(190), decimal.NewFromFloat(9.50), now.Add(-2*time.Hour)),
	}
}
