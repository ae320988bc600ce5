package creditledger

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectCreditLedger implements the query logic to build one client's credit ledger.
// This is a pure function with no side effects - it takes the current domain events and a query
// and returns the projected ledger for the specified client.
//
// Query Logic:
//
//	GIVEN: A client with ClientID
//	WHEN: CreditLedger query is executed
//	THEN: ClientCreditLedger struct is returned with every credit and its uses
//	INCLUDES: Exhausted credits with zero remaining balance
//	EXCLUDES: Credits issued to other clients
//
// The per-credit balances are recomputed from the carried uses on every
// projection, so an incremental resume from a snapshot can never drift.
func ProjectCreditLedger(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...ClientCreditLedger,
) ClientCreditLedger {

	credits := make(map[string]LedgerCredit)
	if len(base) > 0 {
		for _, credit := range base[0].Credits {
			credits[credit.CreditID] = credit
		}
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.CreditIssued:
			if e.ClientID != query.ClientID {
				continue
			}

			credits[e.CreditID] = LedgerCredit{
				CreditID:            e.CreditID,
				SourceReserveNumber: e.SourceReserveNumber,
				IssuedAmount:        e.Amount,
				ReasonCode:          e.ReasonCode,
				IssuedAt:            e.OccurredAt,
			}

		case core.CreditApplied:
			if e.ClientID != query.ClientID {
				continue
			}

			credit, found := credits[e.CreditID]
			if !found {
				continue
			}

			credit.Uses = append(credit.Uses, LedgerUse{
				TargetReserveNumber: e.TargetReserveNumber,
				Amount:              e.Amount,
				AppliedAt:           e.OccurredAt,
			})
			credits[e.CreditID] = credit
		}
	}

	ledger := ClientCreditLedger{
		ClientID:       query.ClientID,
		Credits:        make([]LedgerCredit, 0, len(credits)),
		TotalRemaining: decimal.Zero,
	}

	for _, credit := range credits {
		used := decimal.Zero
		for _, use := range credit.Uses {
			used = used.Add(use.Amount)
		}

		credit.AmountUsed = core.RoundMoney(used)
		credit.Remaining = core.RoundMoney(credit.IssuedAmount.Sub(credit.AmountUsed))

		ledger.TotalRemaining = ledger.TotalRemaining.Add(credit.Remaining)
		ledger.Credits = append(ledger.Credits, credit)
	}

	slices.SortFunc(ledger.Credits, func(a, b LedgerCredit) int {
		if cmp := a.IssuedAt.Compare(b.IssuedAt); cmp != 0 {
			return cmp
		}

		return strings.Compare(a.CreditID, b.CreditID)
	})

	ledger.TotalRemaining = core.RoundMoney(ledger.TotalRemaining)
	ledger.SequenceNumber = maxSequence

	return ledger
}

// BuildLedgerScope creates the scope for querying the credit stream of the
// specified client.
func BuildLedgerScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.CreditIssuedEventType,
			core.CreditAppliedEventType,
		).
		AndAnyTagOf(charterstore.T("ClientID", query.ClientID)).
		Finalize()
}
