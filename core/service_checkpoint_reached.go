package core

import (
	"time"
)

// ServiceCheckpointReachedEventType is the event type identifier.
const ServiceCheckpointReachedEventType = "ServiceCheckpointReached"

// ServiceCheckpointReached represents when a dispatched charter advances
// to the next in-service checkpoint.
type ServiceCheckpointReached struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	Checkpoint    CharterStatus
	OccurredAt    OccurredAtTS
}

// BuildServiceCheckpointReached creates a new ServiceCheckpointReached event.
func BuildServiceCheckpointReached(
	reserveNumber ReserveNumberString,
	checkpoint CharterStatus,
	occurredAt time.Time,
) ServiceCheckpointReached {

	event := ServiceCheckpointReached{
		EventType:     ServiceCheckpointReachedEventType,
		ReserveNumber: reserveNumber,
		Checkpoint:    checkpoint,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e ServiceCheckpointReached) IsEventType() string {
	return ServiceCheckpointReachedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ServiceCheckpointReached) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ServiceCheckpointReached) IsErrorEvent() bool {
	return false
}
