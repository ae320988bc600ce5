package core

import (
	"time"
)

// CharterCompletedEventType is the event type identifier.
const CharterCompletedEventType = "CharterCompleted"

// CharterCompleted represents when service ends and the charter becomes billable.
type CharterCompleted struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	OffDutyAt     time.Time
	OccurredAt    OccurredAtTS
}

// BuildCharterCompleted creates a new CharterCompleted event.
func BuildCharterCompleted(
	reserveNumber ReserveNumberString,
	offDutyAt time.Time,
	occurredAt time.Time,
) CharterCompleted {

	event := CharterCompleted{
		EventType:     CharterCompletedEventType,
		ReserveNumber: reserveNumber,
		OffDutyAt:     offDutyAt.UTC(),
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterCompleted) IsEventType() string {
	return CharterCompletedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterCompleted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterCompleted) IsErrorEvent() bool {
	return false
}
