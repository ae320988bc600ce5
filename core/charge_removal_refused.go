package core

import (
	"time"
)

// ChargeRemovalRefusedEventType is the event type identifier.
const ChargeRemovalRefusedEventType = "ChargeRemovalRefused"

// ChargeRemovalRefused represents when an attempt to strike a charge line
// is rejected. Removal is destructive, so refused attempts are kept on the
// stream as an audit trail.
type ChargeRemovalRefused struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	ChargeID      string
	RefusalReason string
	RequestedBy   ActorString
	OccurredAt    OccurredAtTS
}

// BuildChargeRemovalRefused creates a new ChargeRemovalRefused event.
func BuildChargeRemovalRefused(
	reserveNumber ReserveNumberString,
	chargeID string,
	refusalReason string,
	requestedBy ActorString,
	occurredAt time.Time,
) ChargeRemovalRefused {

	event := ChargeRemovalRefused{
		EventType:     ChargeRemovalRefusedEventType,
		ReserveNumber: reserveNumber,
		ChargeID:      chargeID,
		RefusalReason: refusalReason,
		RequestedBy:   requestedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e ChargeRemovalRefused) IsEventType() string {
	return ChargeRemovalRefusedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ChargeRemovalRefused) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a refused operation.
func (e ChargeRemovalRefused) IsErrorEvent() bool {
	return true
}
