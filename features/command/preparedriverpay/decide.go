package preparedriverpay

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a pay statement can be opened.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// The pay rate is resolved by the handler through the employee directory and
// snapped into the event; it is never re-read once the statement exists.
//
// Business Rules:
//
//	GIVEN: A completed charter with an assigned driver
//	WHEN: PrepareDriverPay command is received
//	THEN: DriverPayPrepared event is generated with suggested hours taken from
//	      the driver's duty day for the service date when recorded, else from
//	      actual route minutes, else from planned route minutes, the route
//	      fallbacks rounded up to the quarter hour
//	THEN: Suggested gratuity is the sum of active gratuity lines, zero when an
//	      incident forfeited the gratuity
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrAuditArtifact if the charter is an accounting placeholder
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	REFUSED: core.ErrInvalidTransition if the charter has not completed service
//	IDEMPOTENCY: If a pay statement already exists, no event is generated (no-op)
func Decide(history core.DomainEvents, command Command, payRate decimal.Decimal) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Pay.Status != core.PayNone {
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

	switch view.Status {
	case core.StatusCompleted, core.StatusInvoiced, core.StatusPaid:
	default:
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	return core.SuccessDecision(
		core.BuildDriverPayPrepared(
			command.ReserveNumber,
			view.DriverID,
			payRate,
			suggestedHours(history, view),
			suggestedGratuity(view),
			command.FloatReceived,
			command.OccurredAt,
		),
	)
}

// suggestedHours prefers the duty day recorded for the service date; route
// actuals and route plans are fallbacks billed in quarter-hour increments.
func suggestedHours(history core.DomainEvents, view core.CharterView) decimal.Decimal {
	ledger := core.ReduceDutyLedger(history, view.DriverID)

	if day, found := ledger.Days[core.ToDutyDate(view.PickupAt)]; found {
		return day.OnDutyHours
	}

	actualMinutes, plannedMinutes := routeMinutes(view)

	if actualMinutes > 0 {
		return core.RoundUpToQuarterHour(actualMinutes)
	}

	return core.RoundUpToQuarterHour(plannedMinutes)
}

func routeMinutes(view core.CharterView) (actualMinutes int, plannedMinutes int) {
	for _, leg := range view.Legs {
		if leg.HasActuals && leg.ActualArriveAt.After(leg.ActualDepartAt) {
			actualMinutes += int(leg.ActualArriveAt.Sub(leg.ActualDepartAt).Minutes())
		}

		if leg.PlannedArriveAt.After(leg.PlannedDepartAt) {
			plannedMinutes += int(leg.PlannedArriveAt.Sub(leg.PlannedDepartAt).Minutes())
		}
	}

	return actualMinutes, plannedMinutes
}

func suggestedGratuity(view core.CharterView) decimal.Decimal {
	if view.GratuityForfeited() {
		return decimal.Zero
	}

	gratuity := decimal.Zero

	for _, charge := range view.ActiveCharges() {
		if charge.ChargeType == core.ChargeGratuity {
			gratuity = gratuity.Add(charge.LineTotal)
		}
	}

	return gratuity
}

// BuildCharterScope creates the scope for querying the charter's lifecycle,
// route sheet, charges, incidents and pay events relevant for this decision.
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
			core.RouteLegPlannedEventType,
			core.RouteLegActualsRecordedEventType,
			core.IncidentRecordedEventType,
			core.IncidentResolvedEventType,
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.DriverPayPreparedEventType,
			core.DriverPayAdjustedEventType,
			core.DriverPayApprovedEventType,
			core.DriverPaySettledEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}

// BuildDriverDutyScope creates the scope for one driver's duty day records,
// queried separately because the driver is only known from the charter stream.
func BuildDriverDutyScope(driverID core.DriverIDString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.DutyDayRecordedEventType).
		AndAnyTagOf(charterstore.T("DriverID", driverID)).
		Finalize()
}
