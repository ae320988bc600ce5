package approvedriverpay

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a pay statement can be approved.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A charter with a prepared pay statement
//	WHEN: ApproveDriverPay command is received
//	THEN: DriverPayApproved event is generated; adjustments refuse from here on
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrPayNotPrepared if no statement was prepared
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If the statement is already approved or settled, no event is generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Pay.Status == core.PayNone {
		return core.RefusedDecision(core.ErrPayNotPrepared)
	}

	if view.Pay.Status == core.PayApproved || view.Pay.Status == core.PaySettled {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildDriverPayApproved(
			command.ReserveNumber,
			command.ApprovedBy,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the charter's pay statement
// plus the lifecycle events relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
			core.DriverPayPreparedEventType,
			core.DriverPayAdjustedEventType,
			core.DriverPayApprovedEventType,
			core.DriverPaySettledEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
