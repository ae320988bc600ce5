package recordlegactuals

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether leg actuals can be recorded.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A charter with a planned route leg at LegSequence
//	WHEN: RecordLegActuals command is received
//	THEN: RouteLegActualsRecorded event is generated
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrLegNotFound if no leg was planned at LegSequence
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If identical actuals are already on file for the leg, no event is generated (no-op)
//
// Re-recording different actuals for a leg is allowed; the latest record wins
// when the view folds. Drivers correct trip sheets after the fact.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	leg, found := view.LegBySequence(command.LegSequence)
	if !found {
		return core.RefusedDecision(core.ErrLegNotFound)
	}

	if leg.HasActuals &&
		leg.ActualDepartAt.Equal(command.ActualDepartAt) &&
		leg.ActualArriveAt.Equal(command.ActualArriveAt) &&
		leg.ActualDistanceKm.Equal(command.ActualDistanceKm) {

		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildRouteLegActualsRecorded(
			command.ReserveNumber,
			command.LegSequence,
			command.ActualDepartAt,
			command.ActualArriveAt,
			command.ActualDistanceKm,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the charter's route sheet
// plus the lifecycle events which are relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
			core.RouteLegPlannedEventType,
			core.RouteLegActualsRecordedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
