package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CharterBookedEventType is the event type identifier.
const CharterBookedEventType = "CharterBooked"

// CharterBooked represents when a charter enters the books as a quote,
// or as an audit placeholder when AuditArtifact is set.
type CharterBooked struct {
	EventType       EventTypeString
	ReserveNumber   ReserveNumberString
	ClientID        ClientIDString
	PickupAt        time.Time
	PickupLocation  string
	DropoffLocation string
	QuotedAmount    decimal.Decimal
	OutOfTown       bool
	AuditArtifact   bool
	Notes           string
	OccurredAt      OccurredAtTS
}

// BuildCharterBooked creates a new CharterBooked event.
func BuildCharterBooked(
	reserveNumber ReserveNumberString,
	clientID ClientIDString,
	pickupAt time.Time,
	pickupLocation string,
	dropoffLocation string,
	quotedAmount decimal.Decimal,
	outOfTown bool,
	auditArtifact bool,
	notes string,
	occurredAt time.Time,
) CharterBooked {

	event := CharterBooked{
		EventType:       CharterBookedEventType,
		ReserveNumber:   reserveNumber,
		ClientID:        clientID,
		PickupAt:        pickupAt.UTC(),
		PickupLocation:  pickupLocation,
		DropoffLocation: dropoffLocation,
		QuotedAmount:    quotedAmount,
		OutOfTown:       outOfTown,
		AuditArtifact:   auditArtifact,
		Notes:           notes,
		OccurredAt:      ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterBooked) IsEventType() string {
	return CharterBookedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterBooked) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterBooked) IsErrorEvent() bool {
	return false
}
