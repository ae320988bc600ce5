package planrouteleg

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a route leg can be planned.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A booked charter with ReserveNumber
//	WHEN: PlanRouteLeg command is received
//	THEN: RouteLegPlanned event is generated
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrInvalidSequence if the leg sequence is zero or negative
//	REFUSED: core.ErrDuplicateSequence if the leg sequence is already planned
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//
// Legs may be planned at any point before archival, including on cancelled
// charters; dispatchers keep route sheets current even when the revenue side
// of a file is frozen out of the lifecycle.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if command.LegSequence <= 0 {
		return core.RefusedDecision(core.ErrInvalidSequence)
	}

	if _, found := view.LegBySequence(command.LegSequence); found {
		return core.RefusedDecision(core.ErrDuplicateSequence)
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildRouteLegPlanned(
			command.ReserveNumber,
			command.LegSequence,
			command.FromLocation,
			command.ToLocation,
			command.PlannedDepartAt,
			command.PlannedArriveAt,
			command.PlannedDistanceKm,
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
