package core

import (
	"time"
)

// DispatchAcknowledgedEventType is the event type identifier.
const DispatchAcknowledgedEventType = "DispatchAcknowledged"

// DispatchAcknowledged represents when a driver and vehicle are assigned
// and the charter is handed to dispatch.
type DispatchAcknowledged struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	DriverID      DriverIDString
	VehicleID     VehicleIDString
	OccurredAt    OccurredAtTS
}

// BuildDispatchAcknowledged creates a new DispatchAcknowledged event.
func BuildDispatchAcknowledged(
	reserveNumber ReserveNumberString,
	driverID DriverIDString,
	vehicleID VehicleIDString,
	occurredAt time.Time,
) DispatchAcknowledged {

	event := DispatchAcknowledged{
		EventType:     DispatchAcknowledgedEventType,
		ReserveNumber: reserveNumber,
		DriverID:      driverID,
		VehicleID:     vehicleID,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DispatchAcknowledged) IsEventType() string {
	return DispatchAcknowledgedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DispatchAcknowledged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DispatchAcknowledged) IsErrorEvent() bool {
	return false
}
