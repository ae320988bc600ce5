package voidinvoice

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic for voiding an invoice.
// Voiding reopens the charter for corrections. Money already collected
// against the invoice does not vanish: it comes back as a client credit
// memo in the same append, so the books stay balanced.
//
// Possible outcomes:
//   - Error: charter does not exist, no invoice was opened, or the charter is locked or archived
//   - Idempotent: the invoice is already void
//   - Success: InvoiceVoided event, plus a CreditIssued event when payments were applied
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.InvoiceNumber == "" {
		return core.RefusedDecision(core.ErrInvoiceNotOpen)
	}

	if view.InvoiceVoided {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	voided := core.BuildInvoiceVoided(
		command.ReserveNumber,
		view.InvoiceNumber,
		command.Reason,
		command.VoidedBy,
		command.OccurredAt,
	)

	amountPaid := view.AmountPaid()
	if amountPaid.IsPositive() {
		return core.SuccessDecision(
			voided,
			core.BuildCreditIssued(
				command.VoidCreditID,
				view.ClientID,
				command.ReserveNumber,
				amountPaid,
				core.CreditOverpay,
				command.OccurredAt,
			),
		)
	}

	return core.SuccessDecision(voided)
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
