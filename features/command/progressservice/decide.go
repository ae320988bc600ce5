package progressservice

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can advance
// to the requested service checkpoint. Checkpoints are walked strictly forward:
// on_duty, on_location, passengers_loaded, en_route, at_event, return_journey.
// Skipping a checkpoint or walking backwards is an illegal transition.
//
// Business Rules:
//
//	GIVEN: A dispatched or in-service charter with ReserveNumber
//	WHEN: ProgressService command is received for the next checkpoint
//	THEN: ServiceCheckpointReached event is generated
//	REFUSED: core.ErrCharterNotFound / ErrAuditArtifact / ErrCharterLocked / ErrCharterArchived
//	REFUSED: core.ErrInvalidTransition for a skipped, backwards, or unknown checkpoint
//	IDEMPOTENCY: Reporting the checkpoint already reached is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if !command.Checkpoint.IsInService() {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	if view.Status == command.Checkpoint {
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

	if !view.Status.CanTransitionTo(command.Checkpoint) {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildServiceCheckpointReached(
			command.ReserveNumber,
			command.Checkpoint,
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
