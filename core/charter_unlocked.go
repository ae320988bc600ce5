package core

import (
	"time"
)

// CharterUnlockedEventType is the event type identifier.
const CharterUnlockedEventType = "CharterUnlocked"

// CharterUnlocked represents when a lock on a charter is lifted.
type CharterUnlocked struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	UnlockedBy    ActorString
	OccurredAt    OccurredAtTS
}

// BuildCharterUnlocked creates a new CharterUnlocked event.
func BuildCharterUnlocked(
	reserveNumber ReserveNumberString,
	unlockedBy ActorString,
	occurredAt time.Time,
) CharterUnlocked {

	event := CharterUnlocked{
		EventType:     CharterUnlockedEventType,
		ReserveNumber: reserveNumber,
		UnlockedBy:    unlockedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterUnlocked) IsEventType() string {
	return CharterUnlockedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterUnlocked) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterUnlocked) IsErrorEvent() bool {
	return false
}
