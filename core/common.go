package core

import (
	"time"
)

// Instead of implementing full value objects, alias types and helper methods are used here ...

// ReserveNumberString identifies a charter; it is the immutable business key of the stream.
type ReserveNumberString = string

// ClientIDString represents a client identifier.
type ClientIDString = string

// DriverIDString represents a driver (employee) identifier.
type DriverIDString = string

// VehicleIDString represents a vehicle identifier.
type VehicleIDString = string

// ActorString represents the operator or accountant performing an action.
type ActorString = string

// EventTypeString represents the type identifier of a domain event.
type EventTypeString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// DutyDateString represents a calendar day in "2006-01-02" form.
type DutyDateString = string

const dutyDateLayout = "2006-01-02"

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// ToDutyDate converts a time to its UTC calendar day.
func ToDutyDate(t time.Time) DutyDateString {
	return t.UTC().Format(dutyDateLayout)
}

// ParseDutyDate converts a DutyDateString back to a UTC time at midnight.
func ParseDutyDate(d DutyDateString) (time.Time, error) {
	return time.Parse(dutyDateLayout, d)
}
