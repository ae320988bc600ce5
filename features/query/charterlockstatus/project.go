package charterlockstatus

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectCharterLockStatus implements the query logic to determine a charter's
// lock flag and lifecycle status. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A charter with ReserveNumber
//	WHEN: CharterLockStatus query is executed
//	THEN: CharterLockStatus struct is returned with the lock flag and presented status
//	INCLUDES: The paid promotion once an invoiced charter's balance settles
//	EXCLUDES: Nothing; locks and status transitions fold in stream order
//
// The optional base parameter resumes from a previous projection state so the
// snapshot wrapper can fold only the records past its sequence.
func ProjectCharterLockStatus(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...CharterLockStatus,
) CharterLockStatus {

	status := CharterLockStatus{ReserveNumber: query.ReserveNumber}
	if len(base) > 0 {
		status = base[0]
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.CharterBooked:
			status.Exists = true

			if e.AuditArtifact {
				status.RawStatus = core.StatusAuditReview
			} else {
				status.RawStatus = core.StatusQuote
			}

		case core.CharterConfirmed:
			status.RawStatus = core.StatusConfirmed

		case core.DispatchAcknowledged:
			status.RawStatus = core.StatusDispatched

		case core.ServiceCheckpointReached:
			status.RawStatus = e.Checkpoint

		case core.CharterCompleted:
			status.RawStatus = core.StatusCompleted

		case core.CharterCancelled:
			status.RawStatus = core.StatusCancelled
			status.TotalCharges = decimal.Zero

		case core.CharterArchived:
			status.RawStatus = core.StatusArchived

		case core.CharterLocked:
			status.IsLocked = true

		case core.CharterUnlocked:
			status.IsLocked = false

		case core.InvoiceFinalized:
			status.RawStatus = core.StatusInvoiced

		case core.InvoiceVoided:
			status.InvoiceVoided = true

		case core.ChargeRecorded:
			status.TotalCharges = status.TotalCharges.Add(e.LineTotal).Add(e.GSTAmount)

		case core.ChargeRemoved:
			status.TotalCharges = status.TotalCharges.Sub(e.Amount)

		case core.PaymentApplied:
			status.TotalPayments = status.TotalPayments.Add(e.AmountApplied)

		case core.CreditApplied:
			if e.TargetReserveNumber == query.ReserveNumber {
				status.TotalPayments = status.TotalPayments.Add(e.Amount)
			}
		}
	}

	status.Status = status.RawStatus
	if status.RawStatus == core.StatusInvoiced && !status.InvoiceVoided &&
		status.TotalCharges.Sub(status.TotalPayments).Sign() <= 0 {
		status.Status = core.StatusPaid
	}

	status.SequenceNumber = maxSequence

	return status
}

// BuildLockStatusScope creates the scope for querying the lifecycle, lock and
// financial events of the specified charter.
func BuildLockStatusScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CharterBookedEventType,
			core.CharterConfirmedEventType,
			core.DispatchAcknowledgedEventType,
			core.ServiceCheckpointReachedEventType,
			core.CharterCompletedEventType,
			core.CharterCancelledEventType,
			core.CharterArchivedEventType,
			core.CharterLockedEventType,
			core.CharterUnlockedEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
			core.ChargeRecordedEventType,
			core.ChargeRemovedEventType,
			core.PaymentAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", query.ReserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("TargetReserveNumber", query.ReserveNumber)).
		Finalize()
}
