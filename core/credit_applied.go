package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditAppliedEventType is the event type identifier.
const CreditAppliedEventType = "CreditApplied"

// CreditApplied represents a slice of an issued credit consumed against a
// target charter's balance. It appears both in the client's credit ledger
// and, through TargetReserveNumber, in the target charter's stream.
type CreditApplied struct {
	EventType           EventTypeString
	CreditID            string
	ClientID            ClientIDString
	SourceReserveNumber ReserveNumberString
	TargetReserveNumber ReserveNumberString
	Amount              decimal.Decimal
	OccurredAt          OccurredAtTS
}

// BuildCreditApplied creates a new CreditApplied event.
func BuildCreditApplied(
	creditID string,
	clientID ClientIDString,
	sourceReserveNumber ReserveNumberString,
	targetReserveNumber ReserveNumberString,
	amount decimal.Decimal,
	occurredAt time.Time,
) CreditApplied {

	event := CreditApplied{
		EventType:           CreditAppliedEventType,
		CreditID:            creditID,
		ClientID:            clientID,
		SourceReserveNumber: sourceReserveNumber,
		TargetReserveNumber: targetReserveNumber,
		Amount:              amount,
		OccurredAt:          ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CreditApplied) IsEventType() string {
	return CreditAppliedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CreditApplied) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CreditApplied) IsErrorEvent() bool {
	return false
}
