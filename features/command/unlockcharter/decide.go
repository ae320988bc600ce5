package unlockcharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be unlocked.
// Unlock is the one mutating operation the lock does not freeze.
//
// Business Rules:
//
//	GIVEN: A locked charter with ReserveNumber
//	WHEN: UnlockCharter command is received
//	THEN: CharterUnlocked event is generated
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	IDEMPOTENCY: Unlocking an unlocked charter is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if !view.Locked {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildCharterUnlocked(
			command.ReserveNumber,
			command.UnlockedBy,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the booking and lock events
// of the charter which are relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
