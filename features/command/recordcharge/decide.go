package recordcharge

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charge can be recorded.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// The line total and GST are computed here and stored on the event, so the
// statement never depends on a later tax rate change.
//
// Business Rules:
//
//	GIVEN: A booked charter with ReserveNumber
//	WHEN: RecordCharge command is received
//	THEN: ChargeRecorded event is generated with line_total = quantity x unit_price
//	      and gst = line_total x rate for taxable lines, zero otherwise
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrUnknownChargeType if the charge type is outside the catalogue
//	REFUSED: core.ErrInvoiceFinalized if the invoice is finalized and not voided
//	REFUSED: core.ErrInvalidTransition if the charter was cancelled
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If the charge id is already on file, no event is generated (no-op)
//
// Placeholder charters accept charges; accounting artifacts exist to carry
// adjustment lines even though they never see service.
func Decide(history core.DomainEvents, command Command, tax core.TaxPolicy) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if !command.ChargeType.IsKnown() {
		return core.RefusedDecision(core.ErrUnknownChargeType)
	}

	if _, found := view.ChargeByID(command.ChargeID); found {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	if view.Status == core.StatusCancelled {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	if view.InvoiceFinalized && !view.InvoiceVoided {
		return core.RefusedDecision(core.ErrInvoiceFinalized)
	}

	lineTotal := core.LineTotal(command.Quantity, command.UnitPrice)

	gstAmount := decimal.Zero
	if command.Taxable {
		gstAmount = core.GSTAmount(lineTotal, tax.GSTRate)
	}

	return core.SuccessDecision(
		core.BuildChargeRecorded(
			command.ReserveNumber,
			command.ChargeID,
			command.ChargeType,
			command.Description,
			command.Quantity,
			command.UnitPrice,
			command.Taxable,
			lineTotal,
			gstAmount,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the charter's charges and
// invoice state plus the lifecycle events relevant for this decision.
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
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
