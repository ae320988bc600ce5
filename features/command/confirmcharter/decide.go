package confirmcharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be confirmed.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A booked charter with ReserveNumber
//	WHEN: ConfirmCharter command is received
//	THEN: CharterConfirmed event is generated
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrAuditArtifact if the charter is an accounting placeholder
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	REFUSED: core.ErrInvalidTransition if the charter is not in the quote state
//	IDEMPOTENCY: If the charter is already confirmed, no event is generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Status == core.StatusConfirmed {
		return core.IdempotentDecision()
	}

	if view.Status.IsPlaceholder() {
		return core.RefusedDecision(core.ErrAuditArtifact)
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	if !view.Status.CanTransitionTo(core.StatusConfirmed) {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildCharterConfirmed(
			command.ReserveNumber,
			command.DepositRequired,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying all lifecycle and lock events
// of the charter which are relevant for this decision.
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
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
