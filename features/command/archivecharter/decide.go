package archivecharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be archived.
// Archiving is terminal: it is legal only from paid or cancelled, and the charter
// and all of its sub-entities are immutable afterwards.
//
// Business Rules:
//
//	GIVEN: A paid or cancelled charter with ReserveNumber
//	WHEN: ArchiveCharter command is received
//	THEN: CharterArchived event is generated
//	REFUSED: core.ErrCharterNotFound / ErrCharterLocked
//	REFUSED: core.ErrInvalidTransition if the charter is not paid or cancelled
//	IDEMPOTENCY: Archiving an archived charter is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Status == core.StatusArchived {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if !view.Status.CanTransitionTo(core.StatusArchived) {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildCharterArchived(
			command.ReserveNumber,
			command.ArchivedBy,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the lifecycle, lock, invoice,
// charge, payment and credit events needed to know whether the charter has settled.
// The paid state is derived from the balance, so the financial events are part of
// this decision's stream.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterConfirmedEventType,
			core.DispatchAcknowledgedEventType,
			core.ServiceCheckpointReachedEventType,
			core.CharterCompletedEventType,
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
