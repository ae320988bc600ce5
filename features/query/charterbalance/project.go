package charterbalance

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectCharterBalance implements the query logic to determine a charter's open balance.
// This is a pure function with no side effects - it takes the current domain events and a query
// and returns the projected money position of the specified charter.
//
// Query Logic:
//
//	GIVEN: A charter with ReserveNumber
//	WHEN: CharterBalance query is executed
//	THEN: CharterBalance struct is returned with total charges, total payments and balance due
//	INCLUDES: GST on taxable lines, applied payments, credits consumed against this charter
//	EXCLUDES: Removed charge lines and charges struck by cancellation
//
// A cancelled charter or a voided invoice settles at zero balance regardless of
// remaining lines. The optional base parameter resumes from a previous projection
// state so the snapshot wrapper can fold only the records past its sequence.
func ProjectCharterBalance(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...CharterBalance,
) CharterBalance {

	balance := CharterBalance{ReserveNumber: query.ReserveNumber}
	if len(base) > 0 {
		balance = base[0]
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.ChargeRecorded:
			balance.TotalCharges = balance.TotalCharges.Add(e.LineTotal).Add(e.GSTAmount)

		case core.ChargeRemoved:
			balance.TotalCharges = balance.TotalCharges.Sub(e.Amount)

		case core.CharterCancelled:
			// Cancellation strikes every charge recorded so far; late fees may still land after.
			balance.Cancelled = true
			balance.TotalCharges = decimal.Zero

		case core.InvoiceVoided:
			balance.InvoiceVoided = true

		case core.PaymentApplied:
			balance.TotalPayments = balance.TotalPayments.Add(e.AmountApplied)

		case core.CreditApplied:
			if e.TargetReserveNumber == query.ReserveNumber {
				balance.TotalPayments = balance.TotalPayments.Add(e.Amount)
			}
		}
	}

	balance.TotalCharges = core.RoundMoney(balance.TotalCharges)
	balance.TotalPayments = core.RoundMoney(balance.TotalPayments)

	balance.BalanceDue = core.RoundMoney(balance.TotalCharges.Sub(balance.TotalPayments))
	if balance.Cancelled || balance.InvoiceVoided {
		balance.BalanceDue = decimal.Zero
	}

	balance.SequenceNumber = maxSequence

	return balance
}

// BuildBalanceScope creates the scope for querying the financial events of the
// specified charter, including credits applied against it from other streams.
func BuildBalanceScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.CharterCancelledEventType,
			core.InvoiceVoidedEventType,
			core.PaymentAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", query.ReserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("TargetReserveNumber", query.ReserveNumber)).
		Finalize()
}
