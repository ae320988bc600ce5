package resolveincident

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether an incident can be resolved.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A charter with a logged incident
//	WHEN: ResolveIncident command is received
//	THEN: IncidentResolved event is generated and the incident becomes read-only
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrIncidentNotFound if the incident id was never recorded
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If the incident is already resolved, no event is generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	incident, found := view.IncidentByID(command.IncidentID)
	if !found {
		return core.RefusedDecision(core.ErrIncidentNotFound)
	}

	if incident.Resolved {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildIncidentResolved(
			command.ReserveNumber,
			command.IncidentID,
			command.ResolvedBy,
			command.Notes,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the charter's incidents
// plus the lifecycle events relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
			core.IncidentRecordedEventType,
			core.IncidentResolvedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
