package applypayment

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic for applying a client payment.
// The payment settles the balance due first; anything beyond that becomes a
// client credit issued in the same append. A payment against a cancelled
// charter has no balance to settle, so the full amount goes to credit, which
// is how retained cancellation deposits enter the ledger.
//
// Possible outcomes:
//   - Error: charter does not exist, amount or reason code is invalid,
//     the invoice is void, or the charter is locked or archived
//   - Idempotent: a payment with the same PaymentID was already applied
//   - Success: PaymentApplied event, plus a CreditIssued event when there is excess
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if !command.AmountTendered.IsPositive() {
		return core.RefusedDecision(core.ErrInvalidAmount)
	}

	reasonCode := command.ReasonCode
	if reasonCode == "" {
		reasonCode = core.CreditOverpay
	}

	if !reasonCode.IsKnown() {
		return core.RefusedDecision(core.ErrUnknownCreditReason)
	}

	if _, found := view.PaymentByID(command.PaymentID); found {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	if view.InvoiceVoided {
		return core.RefusedDecision(core.ErrInvoiceVoid)
	}

	balanceDue := view.BalanceDue()

	applied := command.AmountTendered
	if applied.GreaterThan(balanceDue) {
		applied = balanceDue
	}

	if applied.IsNegative() {
		applied = decimal.Zero
	}

	excess := core.RoundMoney(command.AmountTendered.Sub(applied))

	payment := core.BuildPaymentApplied(
		command.ReserveNumber,
		command.PaymentID,
		command.AmountTendered,
		applied,
		excess,
		command.Method,
		core.ToDutyDate(command.OccurredAt),
		command.OccurredAt,
	)

	if excess.IsPositive() {
		return core.SuccessDecision(
			payment,
			core.BuildCreditIssued(
				command.ExcessCreditID,
				view.ClientID,
				command.ReserveNumber,
				excess,
				reasonCode,
				command.OccurredAt,
			),
		)
	}

	return core.SuccessDecision(payment)
}

// BuildCharterScope builds the journal scope covering the lifecycle, invoice
// and payment events of the charter which are relevant for this decision.
// Credit applications are tagged with the target reserve number, hence the
// second clause.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterCancelledEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.InvoiceOpenedEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
			core.PaymentAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("TargetReserveNumber", reserveNumber)).
		Finalize()
}
