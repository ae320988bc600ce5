package core

import (
	"time"
)

// DriverPaySettledEventType is the event type identifier.
const DriverPaySettledEventType = "DriverPaySettled"

// DriverPaySettled represents when an approved pay statement is paid out.
type DriverPaySettled struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	PaidVia       string
	OccurredAt    OccurredAtTS
}

// BuildDriverPaySettled creates a new DriverPaySettled event.
func BuildDriverPaySettled(
	reserveNumber ReserveNumberString,
	paidVia string,
	occurredAt time.Time,
) DriverPaySettled {

	event := DriverPaySettled{
		EventType:     DriverPaySettledEventType,
		ReserveNumber: reserveNumber,
		PaidVia:       paidVia,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DriverPaySettled) IsEventType() string {
	return DriverPaySettledEventType
}

// HasOccurredAt returns when this event occurred.
func (e DriverPaySettled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DriverPaySettled) IsErrorEvent() bool {
	return false
}
