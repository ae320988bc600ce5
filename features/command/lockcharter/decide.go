package lockcharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be locked.
// The lock is an orthogonal administrative flag: it can be set in any lifecycle state
// and freezes every mutating operation except unlock. It never touches financials.
//
// Business Rules:
//
//	GIVEN: A charter with ReserveNumber
//	WHEN: LockCharter command is received
//	THEN: CharterLocked event is generated
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: Locking a locked charter is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Locked {
		return core.IdempotentDecision()
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildCharterLocked(
			command.ReserveNumber,
			command.Reason,
			command.LockedBy,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the booking, lock and archive
// events of the charter which are relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
