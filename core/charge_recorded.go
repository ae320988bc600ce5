package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeRecordedEventType is the event type identifier.
const ChargeRecordedEventType = "ChargeRecorded"

// ChargeRecorded represents a billable line item added to a charter.
// LineTotal and GSTAmount are computed at decision time and stored so the
// statement never depends on a later rate change.
type ChargeRecorded struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	ChargeID      string
	ChargeType    ChargeType
	Description   string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Taxable       bool
	LineTotal     decimal.Decimal
	GSTAmount     decimal.Decimal
	OccurredAt    OccurredAtTS
}

// BuildChargeRecorded creates a new ChargeRecorded event.
func BuildChargeRecorded(
	reserveNumber ReserveNumberString,
	chargeID string,
	chargeType ChargeType,
	description string,
	quantity decimal.Decimal,
	unitPrice decimal.Decimal,
	taxable bool,
	lineTotal decimal.Decimal,
	gstAmount decimal.Decimal,
	occurredAt time.Time,
) ChargeRecorded {

	event := ChargeRecorded{
		EventType:     ChargeRecordedEventType,
		ReserveNumber: reserveNumber,
		ChargeID:      chargeID,
		ChargeType:    chargeType,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Taxable:       taxable,
		LineTotal:     lineTotal,
		GSTAmount:     gstAmount,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e ChargeRecorded) IsEventType() string {
	return ChargeRecordedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ChargeRecorded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ChargeRecorded) IsErrorEvent() bool {
	return false
}
