package core

import (
	"time"
)

// IncidentResolvedEventType is the event type identifier.
const IncidentResolvedEventType = "IncidentResolved"

// IncidentResolved represents when a logged incident is closed out.
type IncidentResolved struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	IncidentID    string
	ResolvedBy    ActorString
	Notes         string
	OccurredAt    OccurredAtTS
}

// BuildIncidentResolved creates a new IncidentResolved event.
func BuildIncidentResolved(
	reserveNumber ReserveNumberString,
	incidentID string,
	resolvedBy ActorString,
	notes string,
	occurredAt time.Time,
) IncidentResolved {

	event := IncidentResolved{
		EventType:     IncidentResolvedEventType,
		ReserveNumber: reserveNumber,
		IncidentID:    incidentID,
		ResolvedBy:    resolvedBy,
		Notes:         notes,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e IncidentResolved) IsEventType() string {
	return IncidentResolvedEventType
}

// HasOccurredAt returns when this event occurred.
func (e IncidentResolved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e IncidentResolved) IsErrorEvent() bool {
	return false
}
