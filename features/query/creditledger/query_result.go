package creditledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// LedgerUse is one application of a credit against a target charter.
type LedgerUse struct {
	TargetReserveNumber core.ReserveNumberString
	Amount              decimal.Decimal
	AppliedAt           time.Time
}

// LedgerCredit is one issued credit with its consumption history and derived
// balances. Remaining only ever decrements and stays within the issued amount.
type LedgerCredit struct {
	CreditID            string
	SourceReserveNumber core.ReserveNumberString
	IssuedAmount        decimal.Decimal
	ReasonCode          core.CreditReason
	IssuedAt            time.Time
	Uses                []LedgerUse
	AmountUsed          decimal.Decimal
	Remaining           decimal.Decimal
}

// ClientCreditLedger represents the query result holding one client's credits
// in issue order, exhausted credits included. Credits never expire; exhaustion
// is visible, not silent.
type ClientCreditLedger struct {
	ClientID       core.ClientIDString
	Credits        []LedgerCredit
	TotalRemaining decimal.Decimal
	SequenceNumber uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r ClientCreditLedger) GetSequenceNumber() uint {
	return r.SequenceNumber
}
