package finalizeinvoice

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic for finalizing an invoice.
// Finalization freezes the billed totals; after it only voiding reopens the
// charter for corrections. Routine invoices finalize unattended, but an
// invoice over the policy threshold, or one carrying discount, charitable or
// reimbursement lines, needs a named approver. An unresolved major incident
// blocks finalization outright since its review may still change the bill.
//
// Possible outcomes:
//   - Error: charter does not exist, no invoice was opened, the invoice is void,
//     the charter is locked or archived, an unresolved major incident is pending,
//     or approval is required and missing
//   - Idempotent: the invoice is already finalized
//   - Success: InvoiceFinalized event carrying the frozen totals
func Decide(history core.DomainEvents, command Command, approval core.ApprovalPolicy) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if view.InvoiceNumber == "" {
		return core.RefusedDecision(core.ErrInvoiceNotOpen)
	}

	if view.InvoiceVoided {
		return core.RefusedDecision(core.ErrInvoiceVoid)
	}

	if view.InvoiceFinalized {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	if view.HasUnresolvedMajorIncidents() {
		return core.RefusedDecision(core.ErrUnresolvedIncident)
	}

	if command.ApprovedBy == "" && requiresApproval(view, approval) {
		return core.RefusedDecision(core.ErrApprovalRequired)
	}

	return core.SuccessDecision(
		core.BuildInvoiceFinalized(
			command.ReserveNumber,
			view.InvoiceNumber,
			view.SubtotalTaxable(),
			view.GSTTotal(),
			view.SubtotalNonTaxable(),
			view.InvoiceTotal(),
			command.ApprovedBy,
			command.OccurredAt,
		),
	)
}

func requiresApproval(view core.CharterView, approval core.ApprovalPolicy) bool {
	if view.InvoiceTotal().GreaterThan(approval.InvoiceTotalThreshold) {
		return true
	}

	for _, charge := range view.ActiveCharges() {
		if charge.ChargeType.IsNonStandard() {
			return true
		}
	}

	return false
}

// BuildCharterScope builds the journal scope covering the lifecycle, charge,
// incident and invoice events of the charter which are relevant for this decision.
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
			core.IncidentRecordedEventType,
			core.IncidentResolvedEventType,
			core.InvoiceOpenedEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
