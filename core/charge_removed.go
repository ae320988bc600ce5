package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeRemovedEventType is the event type identifier.
const ChargeRemovedEventType = "ChargeRemoved"

// ChargeRemoved represents a charge line struck from a charter before
// invoice finalization.
type ChargeRemoved struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	ChargeID      string
	Amount        decimal.Decimal
	Reason        string
	RemovedBy     ActorString
	OccurredAt    OccurredAtTS
}

// BuildChargeRemoved creates a new ChargeRemoved event.
func BuildChargeRemoved(
	reserveNumber ReserveNumberString,
	chargeID string,
	amount decimal.Decimal,
	reason string,
	removedBy ActorString,
	occurredAt time.Time,
) ChargeRemoved {

	event := ChargeRemoved{
		EventType:     ChargeRemovedEventType,
		ReserveNumber: reserveNumber,
		ChargeID:      chargeID,
		Amount:        amount,
		Reason:        reason,
		RemovedBy:     removedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e ChargeRemoved) IsEventType() string {
	return ChargeRemovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ChargeRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ChargeRemoved) IsErrorEvent() bool {
	return false
}
