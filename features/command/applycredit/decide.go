package applycredit

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic for consuming a client credit.
// The history spans two streams: the client's credit ledger and the target
// charter. A credit slice may never exceed what remains on the credit nor
// the balance still due on the target, so credits can not create new credits.
// A replayed command is recognized by its timestamp and absorbed.
//
// Possible outcomes:
//   - Error: target charter or credit does not exist, amount is invalid,
//     the credit has too little left, or the target is locked or archived
//   - Idempotent: the identical credit slice was already applied
//   - Success: CreditApplied event
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if !view.Exists {
		return core.RefusedDecision(core.ErrCharterNotFound)
	}

	ledger := core.ReduceCreditLedger(history, command.ClientID)

	credit, found := ledger.CreditByID(command.CreditID)
	if !found {
		return core.RefusedDecision(core.ErrCreditNotFound)
	}

	if !command.Amount.IsPositive() {
		return core.RefusedDecision(core.ErrInvalidAmount)
	}

	for _, use := range credit.Uses {
		if use.TargetReserveNumber == command.TargetReserveNumber &&
			use.Amount.Equal(command.Amount) &&
			use.AppliedAt.Equal(command.OccurredAt) {
			return core.IdempotentDecision()
		}
	}

	if view.Locked {
		return core.RefusedDecision(core.ErrCharterLocked)
	}

	if view.Status == core.StatusArchived {
		return core.RefusedDecision(core.ErrCharterArchived)
	}

	if credit.Remaining().LessThan(command.Amount) {
		return core.RefusedDecision(core.ErrInsufficientCredit)
	}

	if command.Amount.GreaterThan(view.BalanceDue()) {
		return core.RefusedDecision(core.ErrInvalidAmount)
	}

	return core.SuccessDecision(
		core.BuildCreditApplied(
			command.CreditID,
			command.ClientID,
			credit.SourceReserveNumber,
			command.TargetReserveNumber,
			command.Amount,
			command.OccurredAt,
		),
	)
}

// BuildCreditScope builds the journal scope spanning the client's credit
// stream and the target charter's financial events. Both streams sit behind
// one sequence check, so a concurrent credit application or charter change
// forces a retry.
func BuildCreditScope(clientID core.ClientIDString, targetReserveNumber core.ReserveNumberString) charterstore.Scope {
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
			core.InvoiceOpenedEventType,
			core.InvoiceFinalizedEventType,
			core.InvoiceVoidedEventType,
			core.PaymentAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", targetReserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("TargetReserveNumber", targetReserveNumber)).
		OrMatching().
		AnyEventTypeOf(core.CreditIssuedEventType, core.CreditAppliedEventType).
		AndAnyTagOf(charterstore.T("ClientID", clientID)).
		Finalize()
}
