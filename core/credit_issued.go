package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditIssuedEventType is the event type identifier.
const CreditIssuedEventType = "CreditIssued"

// CreditIssued represents a credit granted to a client, keyed by CreditID.
// SourceReserveNumber names the charter the credit arose from, when any.
type CreditIssued struct {
	EventType           EventTypeString
	CreditID            string
	ClientID            ClientIDString
	SourceReserveNumber ReserveNumberString
	Amount              decimal.Decimal
	ReasonCode          CreditReason
	OccurredAt          OccurredAtTS
}

// BuildCreditIssued creates a new CreditIssued event.
func BuildCreditIssued(
	creditID string,
	clientID ClientIDString,
	sourceReserveNumber ReserveNumberString,
	amount decimal.Decimal,
	reasonCode CreditReason,
	occurredAt time.Time,
) CreditIssued {

	event := CreditIssued{
		EventType:           CreditIssuedEventType,
		CreditID:            creditID,
		ClientID:            clientID,
		SourceReserveNumber: sourceReserveNumber,
		Amount:              amount,
		ReasonCode:          reasonCode,
		OccurredAt:          ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CreditIssued) IsEventType() string {
	return CreditIssuedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CreditIssued) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CreditIssued) IsErrorEvent() bool {
	return false
}
