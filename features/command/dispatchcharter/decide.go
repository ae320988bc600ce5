package dispatchcharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be dispatched.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A confirmed charter with ReserveNumber
//	WHEN: DispatchCharter command is received
//	THEN: DispatchAcknowledged event is generated with the driver and vehicle assignment
//	REFUSED: core.ErrCharterNotFound / ErrAuditArtifact / ErrCharterLocked / ErrCharterArchived
//	REFUSED: core.ErrInvalidTransition if the charter is not confirmed, or is already
//	         dispatched to a different driver or vehicle
//	IDEMPOTENCY: Re-dispatching the same driver and vehicle is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Status == core.StatusDispatched {
		if view.DriverID == command.DriverID && view.VehicleID == command.VehicleID {
			return core.IdempotentDecision()
		}

		// Reassignment after dispatch is not a lifecycle move this slice supports.
		return core.RefusedDecision(core.ErrInvalidTransition)
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

	if !view.Status.CanTransitionTo(core.StatusDispatched) {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildDispatchAcknowledged(
			command.ReserveNumber,
			command.DriverID,
			command.VehicleID,
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
