package completecharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be completed.
// Completion is legal from any in-service checkpoint; it stamps the driver's off-duty
// time and opens the invoice in the same atomic append, so a completed charter can
// never exist without its invoice.
//
// Business Rules:
//
//	GIVEN: An in-service charter with ReserveNumber
//	WHEN: CompleteCharter command is received
//	THEN: CharterCompleted and InvoiceOpened events are generated together;
//	      the invoice number is INV-{reserve number} and the due date follows
//	      the billing policy's net terms
//	REFUSED: core.ErrCharterNotFound / ErrAuditArtifact / ErrCharterLocked / ErrCharterArchived
//	REFUSED: core.ErrInvalidTransition if the charter has not started service or is cancelled
//	IDEMPOTENCY: Completing an already completed (or invoiced, or paid) charter is a no-op
func Decide(history core.DomainEvents, command Command, billing core.BillingPolicy) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	switch view.Status {
	case core.StatusCompleted, core.StatusInvoiced, core.StatusPaid:
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

	if !view.Status.CanTransitionTo(core.StatusCompleted) {
		return core.RefusedDecision(core.ErrInvalidTransition)
	}

	issuedAt := command.OccurredAt
	dueAt := issuedAt.Add(time.Duration(billing.NetDays) * 24 * time.Hour)

	return core.SuccessDecision(
		core.BuildCharterCompleted(
			command.ReserveNumber,
			command.OffDutyAt,
			command.OccurredAt,
		),
		core.BuildInvoiceOpened(
			command.ReserveNumber,
			InvoiceNumberFor(command.ReserveNumber),
			issuedAt,
			dueAt,
			command.OccurredAt,
		),
	)
}

// InvoiceNumberFor derives the invoice number from the reserve number.
// One charter carries exactly one invoice, so the mapping is fixed.
func InvoiceNumberFor(reserveNumber core.ReserveNumberString) string {
	return "INV-" + reserveNumber
}

// BuildCharterScope creates the scope for querying all lifecycle, lock and invoice
// events of the charter which are relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterConfirmedEventType,
			core.DispatchAcknowledgedEventType,
			core.ServiceCheckpointReachedEventType,
			core.CharterCompletedEventType,
			core.InvoiceOpenedEventType,
			core.CharterCancelledEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
