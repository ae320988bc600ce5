package recordincident

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine how an incident is logged.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A booked charter with ReserveNumber
//	WHEN: RecordIncident command is received
//	THEN: IncidentRecorded event is generated; major severity always sets
//	      requires_manager_review, a major complaint forfeits the gratuity
//	THEN: For a minor incident with a reimbursement amount, a non-taxable
//	      breakdown_reimbursement charge is appended in the same decision
//	REFUSED: core.ErrCharterNotFound if the reserve number was never booked
//	REFUSED: core.ErrUnknownIncidentType / core.ErrUnknownSeverity outside the catalogue
//	REFUSED: core.ErrInvalidAmount if the reimbursement amount is negative
//	REFUSED: core.ErrInvoiceFinalized if a reimbursement line would land on a finalized invoice
//	REFUSED: core.ErrCharterLocked if the charter is locked
//	REFUSED: core.ErrCharterArchived if the charter is archived
//	IDEMPOTENCY: If the incident id is already on file, no event is generated (no-op)
//
// A major incident may carry a reimbursement amount, but the charge line waits
// for manager review; only the incident record captures it.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if !command.IncidentType.IsKnown() {
		return core.RefusedDecision(core.ErrUnknownIncidentType)
	}

	if !command.Severity.IsKnown() {
		return core.RefusedDecision(core.ErrUnknownSeverity)
	}

	if command.ReimbursementAmount.IsNegative() {
		return core.RefusedDecision(core.ErrInvalidAmount)
	}

	if _, found := view.IncidentByID(command.IncidentID); found {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	appendReimbursement := command.Severity == core.SeverityMinor && command.ReimbursementAmount.IsPositive()

	if appendReimbursement && view.InvoiceFinalized && !view.InvoiceVoided {
		return core.RefusedDecision(core.ErrInvoiceFinalized)
	}

	requiresReview := command.Severity == core.SeverityMajor
	gratuityForfeited := command.GratuityForfeited ||
		(command.Severity == core.SeverityMajor && command.IncidentType == core.IncidentComplaint)

	incident := core.BuildIncidentRecorded(
		command.ReserveNumber,
		command.IncidentID,
		command.DriverID,
		command.IncidentType,
		command.Severity,
		command.Description,
		command.ReimbursementAmount,
		gratuityForfeited,
		requiresReview,
		command.OccurredAt,
	)

	if !appendReimbursement {
		return core.SuccessDecision(incident)
	}

	amount := core.RoundMoney(command.ReimbursementAmount)

	return core.SuccessDecision(
		incident,
		core.BuildChargeRecorded(
			command.ReserveNumber,
			command.ReimbursementChargeID,
			core.ChargeBreakdownReimbursement,
			"incident reimbursement "+command.IncidentID,
			decimal.NewFromInt(1),
			amount,
			false,
			amount,
			decimal.Zero,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying the charter's incidents,
// charges and invoice state plus the lifecycle events relevant for this decision.
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
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
