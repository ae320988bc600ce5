package recordnfdcharge

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic for billing the returned-payment fee.
// The fee is a fixed-price miscellaneous line, so the caller supplies no amounts.
// It lands on whatever charter the bounced payment referenced, including
// cancelled ones, because the bank does not care what state the trip is in.
//
// Possible outcomes:
//   - Error: charter does not exist, is locked or archived, or the invoice is finalized
//   - Idempotent: a charge with the same ChargeID was already recorded
//   - Success: ChargeRecorded event with the flat fee
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	if _, found := view.ChargeByID(command.ChargeID); found {
		return core.IdempotentDecision()
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	if view.InvoiceFinalized && !view.InvoiceVoided {
		return core.RefusedDecision(core.ErrInvoiceFinalized)
	}

	amount := core.NFDChargeAmount()

	return core.SuccessDecision(
		core.BuildChargeRecorded(
			command.ReserveNumber,
			command.ChargeID,
			core.ChargeMisc,
			core.NFDChargeDescription,
			decimal.NewFromInt(1),
			amount,
			false,
			core.LineTotal(decimal.NewFromInt(1), amount),
			decimal.Zero,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope builds the journal scope for the charter's charge decisions.
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
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
