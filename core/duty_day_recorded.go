package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DutyDayRecordedEventType is the event type identifier.
const DutyDayRecordedEventType = "DutyDayRecorded"

// DutyDayRecorded represents a driver's duty day entered into the compliance
// journal. The stream key is the driver, not a charter. A later event for the
// same driver and duty date supersedes the earlier one.
type DutyDayRecorded struct {
	EventType        EventTypeString
	DriverID         DriverIDString
	DutyDate         DutyDateString
	OnDutyAt         time.Time
	OffDutyAt        time.Time
	BreakMinutes     int
	OnDutyHours      decimal.Decimal
	ExemptionApplied bool
	ExemptionNote    string
	Classification   HOSClassification
	WindowHours      decimal.Decimal
	OccurredAt       OccurredAtTS
}

// BuildDutyDayRecorded creates a new DutyDayRecorded event.
func BuildDutyDayRecorded(
	driverID DriverIDString,
	dutyDate DutyDateString,
	onDutyAt time.Time,
	offDutyAt time.Time,
	breakMinutes int,
	onDutyHours decimal.Decimal,
	exemptionApplied bool,
	exemptionNote string,
	classification HOSClassification,
	windowHours decimal.Decimal,
	occurredAt time.Time,
) DutyDayRecorded {

	event := DutyDayRecorded{
		EventType:        DutyDayRecordedEventType,
		DriverID:         driverID,
		DutyDate:         dutyDate,
		OnDutyAt:         onDutyAt.UTC(),
		OffDutyAt:        offDutyAt.UTC(),
		BreakMinutes:     breakMinutes,
		OnDutyHours:      onDutyHours,
		ExemptionApplied: exemptionApplied,
		ExemptionNote:    exemptionNote,
		Classification:   classification,
		WindowHours:      windowHours,
		OccurredAt:       ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DutyDayRecorded) IsEventType() string {
	return DutyDayRecordedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DutyDayRecorded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DutyDayRecorded) IsErrorEvent() bool {
	return false
}
