package core

import (
	"time"
)

// CharterCancellationRefusedEventType is the event type identifier.
const CharterCancellationRefusedEventType = "CharterCancellationRefused"

// CharterCancellationRefused represents when an attempt to cancel a charter
// is rejected. It is recorded as an audit trail event because cancellation
// is destructive and refused attempts must stay visible.
type CharterCancellationRefused struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	Reason        string
	RefusalReason string
	OccurredAt    OccurredAtTS
}

// BuildCharterCancellationRefused creates a new CharterCancellationRefused event.
func BuildCharterCancellationRefused(
	reserveNumber ReserveNumberString,
	reason string,
	refusalReason string,
	occurredAt time.Time,
) CharterCancellationRefused {

	event := CharterCancellationRefused{
		EventType:     CharterCancellationRefusedEventType,
		ReserveNumber: reserveNumber,
		Reason:        reason,
		RefusalReason: refusalReason,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterCancellationRefused) IsEventType() string {
	return CharterCancellationRefusedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterCancellationRefused) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a refused operation.
func (e CharterCancellationRefused) IsErrorEvent() bool {
	return true
}
