package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CharterConfirmedEventType is the event type identifier.
const CharterConfirmedEventType = "CharterConfirmed"

// CharterConfirmed represents when a quoted charter is confirmed by the client.
type CharterConfirmed struct {
	EventType       EventTypeString
	ReserveNumber   ReserveNumberString
	DepositRequired decimal.Decimal
	OccurredAt      OccurredAtTS
}

// BuildCharterConfirmed creates a new CharterConfirmed event.
func BuildCharterConfirmed(
	reserveNumber ReserveNumberString,
	depositRequired decimal.Decimal,
	occurredAt time.Time,
) CharterConfirmed {

	event := CharterConfirmed{
		EventType:       CharterConfirmedEventType,
		ReserveNumber:   reserveNumber,
		DepositRequired: depositRequired,
		OccurredAt:      ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterConfirmed) IsEventType() string {
	return CharterConfirmedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterConfirmed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterConfirmed) IsErrorEvent() bool {
	return false
}
