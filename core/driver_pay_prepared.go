package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DriverPayPreparedEventType is the event type identifier.
const DriverPayPreparedEventType = "DriverPayPrepared"

// DriverPayPrepared represents when a pay statement is opened for the
// assigned driver with suggested figures derived from the charter so far.
type DriverPayPrepared struct {
	EventType         EventTypeString
	ReserveNumber     ReserveNumberString
	DriverID          DriverIDString
	PayRate           decimal.Decimal
	SuggestedHours    decimal.Decimal
	SuggestedGratuity decimal.Decimal
	FloatReceived     decimal.Decimal
	OccurredAt        OccurredAtTS
}

// BuildDriverPayPrepared creates a new DriverPayPrepared event.
func BuildDriverPayPrepared(
	reserveNumber ReserveNumberString,
	driverID DriverIDString,
	payRate decimal.Decimal,
	suggestedHours decimal.Decimal,
	suggestedGratuity decimal.Decimal,
	floatReceived decimal.Decimal,
	occurredAt time.Time,
) DriverPayPrepared {

	event := DriverPayPrepared{
		EventType:         DriverPayPreparedEventType,
		ReserveNumber:     reserveNumber,
		DriverID:          driverID,
		PayRate:           payRate,
		SuggestedHours:    suggestedHours,
		SuggestedGratuity: suggestedGratuity,
		FloatReceived:     floatReceived,
		OccurredAt:        ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DriverPayPrepared) IsEventType() string {
	return DriverPayPreparedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DriverPayPrepared) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DriverPayPrepared) IsErrorEvent() bool {
	return false
}
