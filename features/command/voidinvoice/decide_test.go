package voidinvoice_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/command/voidinvoice"
)

func Test_Decide_Success_PaidInvoiceVoidIssuesCreditMemo(t *testing.T) {
	// arrange - $200 was collected against the invoice before the void
	now := time.Now()
	history := append(
		givenInvoicedCharter(t, "RES-00042", now),
		core.BuildPaymentApplied("RES-00042", "PAY-1", decimal.NewFromInt(200), decimal.NewFromInt(200),
			decimal.Zero, "visa", core.ToDutyDate(now), now.Add(-time.Hour)),
	)

	command := voidinvoice.BuildCommand("RES-00042", "wrong client billed", "acct.mgr", "CR-VOID-1", now)

	// act
	result := voidinvoice.Decide(history, command)

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.Len(t, result.Events, 2, "void plus credit memo in one append")

	voided, ok := result.Events[0].(core.InvoiceVoided)
	assert.True(t, ok, "Expected InvoiceVoided event")
	assert.Equal(t, "INV-RES-00042", voided.InvoiceNumber)
	assert.Equal(t, core.ActorString("acct.mgr"), voided.VoidedBy)

	credit, ok := result.Events[1].(core.CreditIssued)
	assert.True(t, ok, "Expected CreditIssued event")
	assert.Equal(t, "CR-VOID-1", credit.CreditID)
	assert.Equal(t, core.ClientIDString("CL-0007"), credit.ClientID)
	assert.Equal(t, core.ReserveNumberString("RES-00042"), credit.SourceReserveNumber)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(200)), "got %s", credit.Amount)
	assert.Equal(t, core.CreditOverpay, credit.ReasonCode)

	view := core.ReduceCharter(append(history, result.Events...))
	assert.True(t, view.InvoiceVoided)
	assert.True(t, view.BalanceDue().IsZero(), "a void invoice carries no balance")
}

func Test_Decide_Success_UnpaidInvoiceVoidsWithoutCredit(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenInvoicedCharter(t, "RES-00042", now)

	// act
	result := voidinvoice.Decide(history, voidinvoice.BuildCommand("RES-00042", "duplicate booking", "acct.mgr", "CR-VOID-1", now))

	// assert
	assert.Equal(t, "success", result.Outcome)
	assert.Len(t, result.Events, 1, "nothing was paid, so no credit memo")
}

func Test_Decide_Idempotent_WhenInvoiceAlreadyVoid(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenInvoicedCharter(t, "RES-00042", now),
		core.BuildInvoiceVoided("RES-00042", "INV-RES-00042", "duplicate booking", "acct.mgr", now.Add(-time.Hour)),
	)

	// act
	result := voidinvoice.Decide(history, voidinvoice.BuildCommand("RES-00042", "duplicate booking", "acct.mgr", "CR-VOID-1", now))

	// assert
	assert.Equal(t, "idempotent", result.Outcome)
	assert.False(t, result.HasEventsToAppend())
}

func Test_Decide_Refused_Cases(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		expectedErr error
	}{
		{
			name:        "charter does not exist",
			history:     core.DomainEvents{},
			expectedErr: core.ErrCharterNotFound,
		},
		{
			name:        "no invoice was opened",
			history:     core.DomainEvents{givenBooking(t, "RES-00042", now)},
			expectedErr: core.ErrInvoiceNotOpen,
		},
		{
			name: "charter is locked",
			history: append(
				givenInvoicedCharter(t, "RES-00042", now),
				core.BuildCharterLocked("RES-00042", "billing dispute", "acct.mgr", now.Add(-time.Minute)),
			),
			expectedErr: core.ErrCharterLocked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := voidinvoice.Decide(tc.history, voidinvoice.BuildCommand("RES-00042", "cleanup", "acct.mgr", "CR-VOID-1", now))

			// assert
			assert.Equal(t, "refused", result.Outcome)
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.False(t, result.HasEventsToAppend())
		})
	}
}

func givenBooking(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvent {
	t.Helper()
	return core.BuildCharterBooked(
		reserveNumber, "CL-0007", now.Add(-72*time.Hour),
		"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
		false, false, "", now.Add(-96*time.Hour),
	)
}

func givenInvoicedCharter(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		givenBooking(t, reserveNumber, now),
		core.BuildInvoiceOpened(reserveNumber, "INV-RES-00042", now.Add(-48*time.Hour), now.Add(-18*time.Hour), now.Add(-48*time.Hour)),
		core.BuildChargeRecorded(reserveNumber, "CHG-1", core.ChargeCharterFee, "charter fee",
			decimal.NewFromInt(1), decimal.NewFromInt(500), true,
			decimal.NewFromInt(500), decimal.NewFromInt(25), now.Add(-47*time.Hour)),
		core.BuildInvoiceFinalized(reserveNumber, "INV-RES-00042",
			decimal.NewFromInt(500), decimal.NewFromInt(25), decimal.Zero,
			decimal.NewFromInt(525), "", now.Add(-46*time.Hour)),
	}
}
