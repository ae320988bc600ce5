package core

import (
	"time"
)

// InvoiceVoidedEventType is the event type identifier.
const InvoiceVoidedEventType = "InvoiceVoided"

// InvoiceVoided represents when a finalized invoice is cancelled outright.
// Voiding zeroes the balance due; it does not refund applied payments.
type InvoiceVoided struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	InvoiceNumber string
	Reason        string
	VoidedBy      ActorString
	OccurredAt    OccurredAtTS
}

// BuildInvoiceVoided creates a new InvoiceVoided event.
func BuildInvoiceVoided(
	reserveNumber ReserveNumberString,
	invoiceNumber string,
	reason string,
	voidedBy ActorString,
	occurredAt time.Time,
) InvoiceVoided {

	event := InvoiceVoided{
		EventType:     InvoiceVoidedEventType,
		ReserveNumber: reserveNumber,
		InvoiceNumber: invoiceNumber,
		Reason:        reason,
		VoidedBy:      voidedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e InvoiceVoided) IsEventType() string {
	return InvoiceVoidedEventType
}

// HasOccurredAt returns when this event occurred.
func (e InvoiceVoided) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e InvoiceVoided) IsErrorEvent() bool {
	return false
}
