package adjustdriverpay

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a pay statement can be adjusted.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// The full breakdown is derived here and recorded in the same append, never
// deferred to a later recomputation:
//
//	total_pay     = payable_hours x pay_rate + gratuity_owed
//	float_balance = float_received - receipts_submitted
//	net_owed      = total_pay - float_balance
//
// The cash tip is recorded for reporting and excluded from the net amount.
//
// Business Rules:
//
//	GIVEN: A charter with a prepared pay statement
//	WHEN: AdjustDriverPay command is received
//	THEN: DriverPayAdjusted event is generated carrying inputs and derived totals
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrPayNotPrepared if no statement was prepared
//	REFUSED: core.ErrPayAlreadyApproved if the statement is approved or settled
//	REFUSED: core.ErrInvalidAmount if payable hours are negative
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If an identical adjustment is already on file, no event is generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Pay.Status == core.PayNone {
		return core.RefusedDecision(core.ErrPayNotPrepared)
	}

	if view.Pay.Status == core.PayApproved || view.Pay.Status == core.PaySettled {
		return core.RefusedDecision(core.ErrPayAlreadyApproved)
	}

	if command.PayableHours.IsNegative() {
		return core.RefusedDecision(core.ErrInvalidAmount)
	}

	totalPay := core.RoundMoney(command.PayableHours.Mul(view.Pay.PayRate).Add(command.GratuityOwed))
	floatBalance := core.RoundMoney(command.FloatReceived.Sub(command.ReceiptsSubmitted))
	netAmountOwed := core.RoundMoney(totalPay.Sub(floatBalance))

	if view.Pay.Adjusted &&
		view.Pay.PayableHours.Equal(command.PayableHours) &&
		view.Pay.GratuityOwed.Equal(command.GratuityOwed) &&
		view.Pay.CashTip.Equal(command.CashTip) &&
		view.Pay.FloatReceived.Equal(command.FloatReceived) &&
		view.Pay.ReceiptsSubmitted.Equal(command.ReceiptsSubmitted) {

		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	return core.SuccessDecision(
		core.BuildDriverPayAdjusted(
			command.ReserveNumber,
			command.PayableHours,
			command.GratuityOwed,
			command.CashTip,
			command.FloatReceived,
			command.ReceiptsSubmitted,
			totalPay,
			floatBalance,
			netAmountOwed,
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
