package cancelcharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	refusalReasonLocked      = "charter is locked"
	refusalReasonPlaceholder = "charter is an audit artifact"
	refusalReasonArchived    = "charter is archived"
	refusalReasonPastService = "charter is already completed"
)

// Decide implements the business logic to determine whether a charter can be cancelled.
// Cancellation is destructive, so every refusal leaves an audit trace: a
// CharterCancellationRefused event carrying the requested reason and why it was refused.
//
// Business Rules:
//
//	GIVEN: A charter with ReserveNumber in a pre-completion state
//	WHEN: CancelCharter command is received
//	THEN: CharterCancelled is generated with the count and total of the charges it zeroes;
//	      when payments were already applied, a cancelled_retention CreditIssued is
//	      generated in the same append
//	ERROR: core.ErrCharterLocked / ErrAuditArtifact / ErrCharterArchived / ErrInvalidTransition,
//	       each appending a CharterCancellationRefused audit event
//	REFUSED: core.ErrCharterNotFound without an audit event (there is no stream to write to)
//	IDEMPOTENCY: Cancelling a cancelled charter is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.Status == core.StatusCancelled {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return refusal(command, refusalReasonLocked, core.ErrCharterLocked)
	}

	if view.Status.IsPlaceholder() {
		return refusal(command, refusalReasonPlaceholder, core.ErrAuditArtifact)
	}

	if view.Status == core.StatusArchived {
		return refusal(command, refusalReasonArchived, core.ErrCharterArchived)
	}

	if !view.Status.IsPreCompletion() {
		return refusal(command, refusalReasonPastService, core.ErrInvalidTransition)
	}

	activeCharges := view.ActiveCharges()
	removedTotal := view.InvoiceTotal()

	cancelled := core.BuildCharterCancelled(
		command.ReserveNumber,
		command.Reason,
		len(activeCharges),
		removedTotal,
		command.OccurredAt,
	)

	// Payments already applied are not refunded in cash; they become a
	// retention credit on the client's account.
	amountPaid := view.AmountPaid()
	if amountPaid.Sign() > 0 {
		retention := core.BuildCreditIssued(
			command.RetentionCreditID,
			view.ClientID,
			command.ReserveNumber,
			amountPaid,
			core.CreditCancelledRetention,
			command.OccurredAt,
		)

		return core.SuccessDecision(cancelled, retention)
	}

	return core.SuccessDecision(cancelled)
}

func refusal(command Command, refusalReason string, err error) core.DecisionResult {
	event := core.BuildCharterCancellationRefused(
		command.ReserveNumber,
		command.Reason,
		refusalReason,
		command.OccurredAt,
	)

	return core.ErrorDecision(event, err)
}

// BuildCharterScope creates the scope for querying the lifecycle, charge, payment
// and credit events of the charter which are relevant for this decision. Credit
// applications are tagged with the target reserve number, hence the second clause.
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
			core.CharterCancellationRefusedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.InvoiceOpenedEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
			core.PaymentAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("TargetReserveNumber", reserveNumber)).
		Finalize()
}
