package removecharge

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	refusalReasonNotFound  = "charge not found"
	refusalReasonLocked    = "charter is locked"
	refusalReasonArchived  = "charter is archived"
	refusalReasonFinalized = "invoice is finalized"
)

// Decide implements the business logic to determine whether a charge can be removed.
// Removal is destructive, so every refusal leaves an audit trace: a
// ChargeRemovalRefused event carrying the requester and why it was refused.
//
// Business Rules:
//
//	GIVEN: A charter with an active charge line
//	WHEN: RemoveCharge command is received
//	THEN: ChargeRemoved is generated carrying the tax-inclusive amount taken off the balance
//	ERROR: core.ErrChargeNotFound / ErrCharterLocked / ErrCharterArchived / ErrInvoiceFinalized,
//	       each appending a ChargeRemovalRefused audit event
//	REFUSED: core.ErrCharterNotFound without an audit event (there is no stream to write to)
//	IDEMPOTENCY: Removing a removed charge is a no-op
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	charge, found := view.ChargeByID(command.ChargeID)
	if !found {
		return refusal(command, refusalReasonNotFound, core.ErrChargeNotFound)
	}

	if charge.Removed {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return refusal(command, refusalReasonLocked, core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return refusal(command, refusalReasonArchived, core.ErrCharterArchived)
	}

	if view.InvoiceFinalized && !view.InvoiceVoided {
		return refusal(command, refusalReasonFinalized, core.ErrInvoiceFinalized)
	}

	return core.SuccessDecision(
		core.BuildChargeRemoved(
			command.ReserveNumber,
			command.ChargeID,
			core.RoundMoney(charge.LineTotal.Add(charge.GSTAmount)),
			command.Reason,
			command.Actor,
			command.OccurredAt,
		),
	)
}

func refusal(command Command, refusalReason string, err error) core.DecisionResult {
	event := core.BuildChargeRemovalRefused(
		command.ReserveNumber,
		command.ChargeID,
		refusalReason,
		command.Actor,
		command.OccurredAt,
	)

	return core.ErrorDecision(event, err)
}

// BuildCharterScope creates the scope for querying the charter's charges and
// invoice state plus the lifecycle events relevant for this decision.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterCancelledEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.CharterArchivedEventType,
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.ChargeRemovalRefusedEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
