package invoicestatement

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectInvoiceStatement implements the query logic to build a charter's invoice statement.
// This is a pure function with no side effects - it takes the current domain events and a query
// and returns the projected statement for the specified charter.
//
// Query Logic:
//
//	GIVEN: A charter with ReserveNumber
//	WHEN: InvoiceStatement query is executed
//	THEN: InvoiceStatement struct is returned with lines, payments, credits and totals
//	INCLUDES: Removed lines marked struck, credits consumed from other charters
//	EXCLUDES: Struck lines from the subtotals
//
// The totals are recomputed from the carried lines on every projection, so an
// incremental resume from a snapshot can never drift from the line detail.
// The status evaluates against the query's as-of time.
func ProjectInvoiceStatement(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...InvoiceStatement,
) InvoiceStatement {

	statement := InvoiceStatement{ReserveNumber: query.ReserveNumber}
	if len(base) > 0 {
		statement = base[0]
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.CharterBooked:
			statement.ClientID = e.ClientID

		case core.InvoiceOpened:
			statement.InvoiceNumber = e.InvoiceNumber
			statement.IssuedAt = e.IssuedAt
			statement.DueAt = e.DueAt

		case core.ChargeRecorded:
			statement.Lines = append(statement.Lines, StatementLine{
				ChargeID:    e.ChargeID,
				ChargeType:  e.ChargeType,
				Description: e.Description,
				Quantity:    e.Quantity,
				UnitPrice:   e.UnitPrice,
				Taxable:     e.Taxable,
				LineTotal:   e.LineTotal,
				GSTAmount:   e.GSTAmount,
			})

		case core.ChargeRemoved:
			for i := range statement.Lines {
				if statement.Lines[i].ChargeID == e.ChargeID {
					statement.Lines[i].Removed = true
				}
			}

		case core.CharterCancelled:
			statement.Cancelled = true

			for i := range statement.Lines {
				statement.Lines[i].Removed = true
			}

		case core.InvoiceFinalized:
			statement.Finalized = true

		case core.InvoiceVoided:
			statement.Voided = true

		case core.PaymentApplied:
			statement.Payments = append(statement.Payments, StatementPayment{
				PaymentID:     e.PaymentID,
				AmountApplied: e.AmountApplied,
				Method:        e.Method,
				ReceivedOn:    e.ReceivedOn,
			})

		case core.CreditApplied:
			if e.TargetReserveNumber == query.ReserveNumber {
				statement.Credits = append(statement.Credits, StatementCredit{
					CreditID:            e.CreditID,
					SourceReserveNumber: e.SourceReserveNumber,
					Amount:              e.Amount,
				})
			}
		}
	}

	recomputeTotals(&statement)

	statement.Status = core.DeriveInvoiceStatus(
		statement.BalanceDue,
		statement.AmountPaid,
		statement.Voided,
		statement.DueAt,
		query.AsOf,
	)

	statement.SequenceNumber = maxSequence

	return statement
}

// recomputeTotals derives the statement totals from the carried line and
// payment detail.
func recomputeTotals(statement *InvoiceStatement) {
	subtotalTaxable := decimal.Zero
	subtotalNonTaxable := decimal.Zero
	gst := decimal.Zero

	for _, line := range statement.Lines {
		if line.Removed {
			continue
		}

		if line.Taxable {
			subtotalTaxable = subtotalTaxable.Add(line.LineTotal)
		} else {
			subtotalNonTaxable = subtotalNonTaxable.Add(line.LineTotal)
		}

		gst = gst.Add(line.GSTAmount)
	}

	paid := decimal.Zero
	for _, payment := range statement.Payments {
		paid = paid.Add(payment.AmountApplied)
	}
	for _, credit := range statement.Credits {
		paid = paid.Add(credit.Amount)
	}

	statement.SubtotalTaxable = core.RoundMoney(subtotalTaxable)
	statement.SubtotalNonTaxable = core.RoundMoney(subtotalNonTaxable)
	statement.GSTAmount = core.RoundMoney(gst)
	statement.InvoiceTotal = core.RoundMoney(statement.SubtotalTaxable.Add(statement.GSTAmount).Add(statement.SubtotalNonTaxable))
	statement.AmountPaid = core.RoundMoney(paid)
	statement.BalanceDue = core.RoundMoney(statement.InvoiceTotal.Sub(statement.AmountPaid))
}

// BuildStatementScope creates the scope for querying the billing events of the
// specified charter, including credits applied against it from other streams.
func BuildStatementScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.InvoiceOpenedEventType,
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.CharterCancelledEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
			core.PaymentAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", query.ReserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("TargetReserveNumber", query.ReserveNumber)).
		Finalize()
}
