package core

import (
	"time"
)

// CharterLockedEventType is the event type identifier.
const CharterLockedEventType = "CharterLocked"

// CharterLocked represents when a charter is frozen against mutation,
// typically during a billing dispute or fiscal review.
type CharterLocked struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	Reason        string
	LockedBy      ActorString
	OccurredAt    OccurredAtTS
}

// BuildCharterLocked creates a new CharterLocked event.
func BuildCharterLocked(
	reserveNumber ReserveNumberString,
	reason string,
	lockedBy ActorString,
	occurredAt time.Time,
) CharterLocked {

	event := CharterLocked{
		EventType:     CharterLockedEventType,
		ReserveNumber: reserveNumber,
		Reason:        reason,
		LockedBy:      lockedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterLocked) IsEventType() string {
	return CharterLockedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterLocked) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterLocked) IsErrorEvent() bool {
	return false
}
