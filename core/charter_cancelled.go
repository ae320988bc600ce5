package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CharterCancelledEventType is the event type identifier.
const CharterCancelledEventType = "CharterCancelled"

// CharterCancelled represents when a charter is called off before completion.
// It carries a summary of the charge lines dropped with it so the stream
// remains auditable without replaying every removal.
type CharterCancelled struct {
	EventType          EventTypeString
	ReserveNumber      ReserveNumberString
	Reason             string
	RemovedChargeCount int
	RemovedChargeTotal decimal.Decimal
	OccurredAt         OccurredAtTS
}

// BuildCharterCancelled creates a new CharterCancelled event.
func BuildCharterCancelled(
	reserveNumber ReserveNumberString,
	reason string,
	removedChargeCount int,
	removedChargeTotal decimal.Decimal,
	occurredAt time.Time,
) CharterCancelled {

	event := CharterCancelled{
		EventType:          CharterCancelledEventType,
		ReserveNumber:      reserveNumber,
		Reason:             reason,
		RemovedChargeCount: removedChargeCount,
		RemovedChargeTotal: removedChargeTotal,
		OccurredAt:         ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CharterCancelled) IsEventType() string {
	return CharterCancelledEventType
}

// HasOccurredAt returns when this event occurred.
func (e CharterCancelled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e CharterCancelled) IsErrorEvent() bool {
	return false
}
