package settledriverpay

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a pay statement can be settled.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A charter with an approved pay statement
//	WHEN: SettleDriverPay command is received
//	THEN: DriverPaySettled event is generated and the statement is closed
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrPayNotPrepared if no statement was prepared
//	REFUSED: core.ErrPayNotApproved if the statement has not been approved
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If the statement is already settled, no event is generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Pay.Status == core.PayNone {
		return core.RefusedDecision(core.ErrPayNotPrepared)
	}

	if view.Pay.Status == core.PaySettled {
		return core.IdempotentDecision()
	}

	if view.Pay.Status != core.PayApproved {
		return core.RefusedDecision(core.ErrPayNotApproved)
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildDriverPaySettled(
			command.ReserveNumber,
			command.PaidVia,
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
