package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncidentRecordedEventType is the event type identifier.
const IncidentRecordedEventType = "IncidentRecorded"

// IncidentRecorded represents a service incident logged against a charter.
// Major incidents block invoice finalization until resolved; complaints of
// major severity also forfeit the driver's gratuity.
type IncidentRecorded struct {
	EventType             EventTypeString
	ReserveNumber         ReserveNumberString
	IncidentID            string
	DriverID              DriverIDString
	IncidentType          IncidentType
	Severity              IncidentSeverity
	Description           string
	ReimbursementAmount   decimal.Decimal
	GratuityForfeited     bool
	RequiresManagerReview bool
	OccurredAt            OccurredAtTS
}

// BuildIncidentRecorded creates a new IncidentRecorded event.
func BuildIncidentRecorded(
	reserveNumber ReserveNumberString,
	incidentID string,
	driverID DriverIDString,
	incidentType IncidentType,
	severity IncidentSeverity,
	description string,
	reimbursementAmount decimal.Decimal,
	gratuityForfeited bool,
	requiresManagerReview bool,
	occurredAt time.Time,
) IncidentRecorded {

	event := IncidentRecorded{
		EventType:             IncidentRecordedEventType,
		ReserveNumber:         reserveNumber,
		IncidentID:            incidentID,
		DriverID:              driverID,
		IncidentType:          incidentType,
		Severity:              severity,
		Description:           description,
		ReimbursementAmount:   reimbursementAmount,
		GratuityForfeited:     gratuityForfeited,
		RequiresManagerReview: requiresManagerReview,
		OccurredAt:            ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e IncidentRecorded) IsEventType() string {
	return IncidentRecordedEventType
}

// HasOccurredAt returns when this event occurred.
func (e IncidentRecorded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e IncidentRecorded) IsErrorEvent() bool {
	return false
}
