package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// RouteLegPlannedEventType is the event type identifier.
const RouteLegPlannedEventType = "RouteLegPlanned"

// RouteLegPlanned represents when a leg of the itinerary is planned,
// ordered within the charter by its leg sequence.
type RouteLegPlanned struct {
	EventType         EventTypeString
	ReserveNumber     ReserveNumberString
	LegSequence       int
	FromLocation      string
	ToLocation        string
	PlannedDepartAt   time.Time
	PlannedArriveAt   time.Time
	PlannedDistanceKm decimal.Decimal
	OccurredAt        OccurredAtTS
}

// BuildRouteLegPlanned creates a new RouteLegPlanned event.
func BuildRouteLegPlanned(
	reserveNumber ReserveNumberString,
	legSequence int,
	fromLocation string,
	toLocation string,
	plannedDepartAt time.Time,
	plannedArriveAt time.Time,
	plannedDistanceKm decimal.Decimal,
	occurredAt time.Time,
) RouteLegPlanned {

	event := RouteLegPlanned{
		EventType:         RouteLegPlannedEventType,
		ReserveNumber:     reserveNumber,
		LegSequence:       legSequence,
		FromLocation:      fromLocation,
		ToLocation:        toLocation,
		PlannedDepartAt:   plannedDepartAt.UTC(),
		PlannedArriveAt:   plannedArriveAt.UTC(),
		PlannedDistanceKm: plannedDistanceKm,
		OccurredAt:        ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e RouteLegPlanned) IsEventType() string {
	return RouteLegPlannedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RouteLegPlanned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e RouteLegPlanned) IsErrorEvent() bool {
	return false
}
