package invoicestatement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/features/query/invoicestatement"
)

func Test_ProjectInvoiceStatement_DerivesTotalsFromLines(t *testing.T) {
	// arrange - $500 taxable fee plus $40 non-taxable beverage
	now := time.Now()
	history := append(
		givenOpenInvoice(t, "RES-00042", now),
		core.BuildChargeRecorded("RES-00042", "CHG-2", core.ChargeBeverage, "sparkling water",
			decimal.NewFromInt(4), decimal.NewFromInt(10), false,
			decimal.NewFromInt(40), decimal.Zero, now.Add(-46*time.Hour)),
	)

	// act
	result := invoicestatement.ProjectInvoiceStatement(history, invoicestatement.BuildQuery("RES-00042", now), 4)

	// assert
	assert.Equal(t, "INV-RES-00042", result.InvoiceNumber)
	assert.Equal(t, core.ClientIDString("CL-0007"), result.ClientID)
	assert.Len(t, result.Lines, 2)
	assert.True(t, result.SubtotalTaxable.Equal(decimal.NewFromInt(500)), "got %s", result.SubtotalTaxable)
	assert.True(t, result.GSTAmount.Equal(decimal.NewFromInt(25)), "got %s", result.GSTAmount)
	assert.True(t, result.SubtotalNonTaxable.Equal(decimal.NewFromInt(40)), "got %s", result.SubtotalNonTaxable)
	assert.True(t, result.InvoiceTotal.Equal(decimal.NewFromInt(565)), "got %s", result.InvoiceTotal)
	assert.True(t, result.BalanceDue.Equal(decimal.NewFromInt(565)), "got %s", result.BalanceDue)
}

func Test_ProjectInvoiceStatement_RemovedLineStaysStruckOnStatement(t *testing.T) {
	// arrange
	now := time.Now()
	history := append(
		givenOpenInvoice(t, "RES-00042", now),
		core.BuildChargeRemoved("RES-00042", "CHG-1",
			decimal.NewFromInt(525), "billed in error", "acct.mgr", now.Add(-time.Hour)),
	)

	// act
	result := invoicestatement.ProjectInvoiceStatement(history, invoicestatement.BuildQuery("RES-00042", now), 4)

	// assert
	assert.Len(t, result.Lines, 1, "the struck line stays visible")
	assert.True(t, result.Lines[0].Removed)
	assert.True(t, result.InvoiceTotal.IsZero(), "struck lines never bill, got %s", result.InvoiceTotal)
}

func Test_ProjectInvoiceStatement_PaymentsAndCreditsReduceBalance(t *testing.T) {
	// arrange - $200 payment plus $100 credit from a sibling charter
	now := time.Now()
	history := append(
		givenOpenInvoice(t, "RES-00042", now),
		core.BuildPaymentApplied("RES-00042", "PAY-1",
			decimal.NewFromInt(200), decimal.NewFromInt(200), decimal.Zero,
			"visa", core.ToDutyDate(now), now.Add(-2*time.Hour)),
		core.BuildCreditApplied("CR-9", "CL-0007", "RES-00017", "RES-00042",
			decimal.NewFromInt(100), now.Add(-time.Hour)),
	)

	// act
	result := invoicestatement.ProjectInvoiceStatement(history, invoicestatement.BuildQuery("RES-00042", now), 5)

	// assert
	assert.Len(t, result.Payments, 1)
	assert.Len(t, result.Credits, 1)
	assert.True(t, result.AmountPaid.Equal(decimal.NewFromInt(300)), "got %s", result.AmountPaid)
	assert.True(t, result.BalanceDue.Equal(decimal.NewFromInt(225)), "got %s", result.BalanceDue)
	assert.Equal(t, core.InvoicePartiallyPaid, result.Status)
}

func Test_ProjectInvoiceStatement_StatusTurnsOverdueAfterDueDate(t *testing.T) {
	// arrange - unpaid invoice queried one day past its due date
	now := time.Now()
	history := givenOpenInvoice(t, "RES-00042", now)
	dueAt := now.Add(-18 * time.Hour)

	// act
	beforeDue := invoicestatement.ProjectInvoiceStatement(history, invoicestatement.BuildQuery("RES-00042", dueAt.Add(-time.Hour)), 3)
	afterDue := invoicestatement.ProjectInvoiceStatement(history, invoicestatement.BuildQuery("RES-00042", dueAt.Add(time.Hour)), 3)

	// assert
	assert.Equal(t, core.InvoiceOpen, beforeDue.Status)
	assert.Equal(t, core.InvoiceOverdue, afterDue.Status)
}

func Test_ProjectInvoiceStatement_SettledThenVoidedReadsPaid(t *testing.T) {
	// arrange - settled in full, voided afterwards
	now := time.Now()
	history := append(
		givenOpenInvoice(t, "RES-00042", now),
		core.BuildPaymentApplied("RES-00042", "PAY-1",
			decimal.NewFromInt(525), decimal.NewFromInt(525), decimal.Zero,
			"cheque", core.ToDutyDate(now), now.Add(-2*time.Hour)),
		core.BuildInvoiceVoided("RES-00042", "INV-RES-00042", "wrong client billed", "acct.mgr", now.Add(-time.Hour)),
	)

	// act
	result := invoicestatement.ProjectInvoiceStatement(history, invoicestatement.BuildQuery("RES-00042", now), 5)

	// assert
	assert.True(t, result.Voided)
	assert.Equal(t, core.InvoicePaid, result.Status, "money already collected takes precedence over the void flag")
}

func Test_ProjectInvoiceStatement_ResumesFromBaseProjection(t *testing.T) {
	// arrange
	now := time.Now()
	history := givenOpenInvoice(t, "RES-00042", now)
	tail := core.DomainEvents{
		core.BuildPaymentApplied("RES-00042", "PAY-1",
			decimal.NewFromInt(525), decimal.NewFromInt(525), decimal.Zero,
			"cheque", core.ToDutyDate(now), now.Add(-time.Hour)),
	}
	query := invoicestatement.BuildQuery("RES-00042", now)

	base := invoicestatement.ProjectInvoiceStatement(history, query, 3)

	// act
	incremental := invoicestatement.ProjectInvoiceStatement(tail, query, 4, base)
	full := invoicestatement.ProjectInvoiceStatement(append(history, tail...), query, 4)

	// assert
	assert.Equal(t, full.Status, incremental.Status)
	assert.True(t, incremental.BalanceDue.Equal(full.BalanceDue), "incremental %s vs full %s", incremental.BalanceDue, full.BalanceDue)
	assert.Len(t, incremental.Payments, 1)
	assert.Equal(t, full.GetSequenceNumber(), incremental.GetSequenceNumber())
}

func givenOpenInvoice(t *testing.T, reserveNumber core.ReserveNumberString, now time.Time) core.DomainEvents {
	t.Helper()
	return core.DomainEvents{
		core.BuildCharterBooked(
			reserveNumber, "CL-0007", now.Add(-72*time.Hour),
			"Hotel Macdonald", "Commonwealth Stadium", decimal.NewFromInt(900),
			false, false, "", now.Add(-96*time.Hour),
		),
		core.BuildInvoiceOpened(reserveNumber, "INV-RES-00042", now.Add(-48*time.Hour), now.Add(-18*time.Hour), now.Add(-48*time.Hour)),
		core.BuildChargeRecorded(reserveNumber, "CHG-1", core.ChargeCharterFee, "charter fee",
			decimal.NewFromInt(1), decimal.NewFromInt(500), true,
			decimal.NewFromInt(500), decimal.NewFromInt(25), now.Add(-47*time.Hour)),
	}
}
