package core

import (
	"time"
)

// DriverPayApprovedEventType is the event type identifier.
const DriverPayApprovedEventType = "DriverPayApproved"

// DriverPayApproved represents when a pay statement is signed off and frozen.
type DriverPayApproved struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	ApprovedBy    ActorString
	OccurredAt    OccurredAtTS
}

// BuildDriverPayApproved creates a new DriverPayApproved event.
func BuildDriverPayApproved(
	reserveNumber ReserveNumberString,
	approvedBy ActorString,
	occurredAt time.Time,
) DriverPayApproved {

	event := DriverPayApproved{
		EventType:     DriverPayApprovedEventType,
		ReserveNumber: reserveNumber,
		ApprovedBy:    approvedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DriverPayApproved) IsEventType() string {
	return DriverPayApprovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DriverPayApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DriverPayApproved) IsErrorEvent() bool {
	return false
}
