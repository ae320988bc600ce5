package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentAppliedEventType is the event type identifier.
const PaymentAppliedEventType = "PaymentApplied"

// PaymentApplied represents a client payment applied to a charter.
// AmountApplied is capped at the balance due; any excess is carried on the
// event and turned into client credit by the same decision.
type PaymentApplied struct {
	EventType      EventTypeString
	ReserveNumber  ReserveNumberString
	PaymentID      string
	AmountTendered decimal.Decimal
	AmountApplied  decimal.Decimal
	ExcessAmount   decimal.Decimal
	Method         string
	ReceivedOn     DutyDateString
	OccurredAt     OccurredAtTS
}

// BuildPaymentApplied creates a new PaymentApplied event.
func BuildPaymentApplied(
	reserveNumber ReserveNumberString,
	paymentID string,
	amountTendered decimal.Decimal,
	amountApplied decimal.Decimal,
	excessAmount decimal.Decimal,
	method string,
	receivedOn DutyDateString,
	occurredAt time.Time,
) PaymentApplied {

	event := PaymentApplied{
		EventType:      PaymentAppliedEventType,
		ReserveNumber:  reserveNumber,
		PaymentID:      paymentID,
		AmountTendered: amountTendered,
		AmountApplied:  amountApplied,
		ExcessAmount:   excessAmount,
		Method:         method,
		ReceivedOn:     receivedOn,
		OccurredAt:     ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e PaymentApplied) IsEventType() string {
	return PaymentAppliedEventType
}

// HasOccurredAt returns when this event occurred.
func (e PaymentApplied) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PaymentApplied) IsErrorEvent() bool {
	return false
}
