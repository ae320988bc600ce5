package core

import (
	"time"
)

// CharterArchivedEventType is the event type identifier.
const CharterArchivedEventType = "CharterArchived"

// CharterArchived represents when a settled or cancelled charter is moved
// to the archive and becomes immutable.
type CharterArchived struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	ArchivedBy    ActorString
	OccurredAt    OccurredAtTS
}

// BuildCharterArchived creates a new CharterArchived event.
func BuildCharterArchived(
	reserveNumber ReserveNumberString,
	archivedBy ActorString,
	occurredAt time.Time,
) CharterArchived {

	event := CharterArchived{
		EventType:     CharterArchivedEventType,
		ReserveNumber: reserveNumber,
		ArchivedBy:    archivedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterArchived) IsEventType() string {
	return CharterArchivedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterArchived) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterArchived) IsErrorEvent() bool {
	return false
}
