package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// RouteLegActualsRecordedEventType is the event type identifier.
const RouteLegActualsRecordedEventType = "RouteLegActualsRecorded"

// RouteLegActualsRecorded represents when the driven times and distance
// for a planned leg are recorded after the fact.
type RouteLegActualsRecorded struct {
	EventType        EventTypeString
	ReserveNumber    ReserveNumberString
	LegSequence      int
	ActualDepartAt   time.Time
	ActualArriveAt   time.Time
	ActualDistanceKm decimal.Decimal
	OccurredAt       OccurredAtTS
}

// BuildRouteLegActualsRecorded creates a new RouteLegActualsRecorded event.
func BuildRouteLegActualsRecorded(
	reserveNumber ReserveNumberString,
	legSequence int,
	actualDepartAt time.Time,
	actualArriveAt time.Time,
	actualDistanceKm decimal.Decimal,
	occurredAt time.Time,
) RouteLegActualsRecorded {

	event := RouteLegActualsRecorded{
		EventType:        RouteLegActualsRecordedEventType,
		ReserveNumber:    reserveNumber,
		LegSequence:      legSequence,
		ActualDepartAt:   actualDepartAt.UTC(),
		ActualArriveAt:   actualArriveAt.UTC(),
		ActualDistanceKm: actualDistanceKm,
		OccurredAt:       ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e RouteLegActualsRecorded) IsEventType() string {
	return RouteLegActualsRecordedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RouteLegActualsRecorded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e RouteLegActualsRecorded) IsErrorEvent() bool {
	return false
}
