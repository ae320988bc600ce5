package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditUse is a slice of an issued credit consumed against a target charter.
type CreditUse struct {
	TargetReserveNumber ReserveNumberString
	Amount              decimal.Decimal
	AppliedAt           time.Time
}

// CreditState is one issued credit with its consumption history.
type CreditState struct {
	CreditID            string
	ClientID            ClientIDString
	SourceReserveNumber ReserveNumberString
	IssuedAmount        decimal.Decimal
	ReasonCode          CreditReason
	IssuedAt            time.Time
	Uses                []CreditUse
}

// AmountUsed sums the applied slices of this credit.
func (c CreditState) AmountUsed() decimal.Decimal {
	sum := decimal.Zero

	for _, use := range c.Uses {
		sum = sum.Add(use.Amount)
	}

	return RoundMoney(sum)
}

// Remaining is the unconsumed balance of this credit.
func (c CreditState) Remaining() decimal.Decimal {
	return RoundMoney(c.IssuedAmount.Sub(c.AmountUsed()))
}

// CreditLedger is one client's credits folded from the credit stream,
// in issue order.
type CreditLedger struct {
	ClientID ClientIDString
	Credits  []CreditState
}

// ReduceCreditLedger folds credit events for one client into a CreditLedger.
// Events for other clients are ignored.
func ReduceCreditLedger(history DomainEvents, clientID ClientIDString) CreditLedger {
	ledger := CreditLedger{ClientID: clientID}

	for _, event := range history {
		switch e := event.(type) {
		case CreditIssued:
			if e.ClientID != clientID {
				continue
			}

			ledger.Credits = append(ledger.Credits, CreditState{
				CreditID:            e.CreditID,
				ClientID:            e.ClientID,
				SourceReserveNumber: e.SourceReserveNumber,
				IssuedAmount:        e.Amount,
				ReasonCode:          e.ReasonCode,
				IssuedAt:            e.OccurredAt,
			})

		case CreditApplied:
			if e.ClientID != clientID {
				continue
			}

			for i := range ledger.Credits {
				if ledger.Credits[i].CreditID == e.CreditID {
					ledger.Credits[i].Uses = append(ledger.Credits[i].Uses, CreditUse{
						TargetReserveNumber: e.TargetReserveNumber,
						Amount:              e.Amount,
						AppliedAt:           e.OccurredAt,
					})
				}
			}
		}
	}

	return ledger
}

// CreditByID returns the credit with the given ID.
func (l CreditLedger) CreditByID(creditID string) (CreditState, bool) {
	for _, credit := range l.Credits {
		if credit.CreditID == creditID {
			return credit, true
		}
	}

	return CreditState{}, false
}

// TotalRemaining sums the unconsumed balances of all credits.
func (l CreditLedger) TotalRemaining() decimal.Decimal {
	sum := decimal.Zero

	for _, credit := range l.Credits {
		sum = sum.Add(credit.Remaining())
	}

	return RoundMoney(sum)
}
