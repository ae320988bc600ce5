package core

import (
	"time"
)

// InvoiceOpenedEventType is the event type identifier.
const InvoiceOpenedEventType = "InvoiceOpened"

// InvoiceOpened represents when an invoice shell is opened for a completed
// charter, carrying the reserved invoice number and payment terms.
type InvoiceOpened struct {
	EventType     EventTypeString
	ReserveNumber ReserveNumberString
	InvoiceNumber string
	IssuedAt      time.Time
	DueAt         time.Time
	OccurredAt    OccurredAtTS
}

// BuildInvoiceOpened creates a new InvoiceOpened event.
func BuildInvoiceOpened(
	reserveNumber ReserveNumberString,
	invoiceNumber string,
	issuedAt time.Time,
	dueAt time.Time,
	occurredAt time.Time,
) InvoiceOpened {

	event := InvoiceOpened{
		EventType:     InvoiceOpenedEventType,
		ReserveNumber: reserveNumber,
		InvoiceNumber: invoiceNumber,
		IssuedAt:      issuedAt.UTC(),
		DueAt:         dueAt.UTC(),
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e InvoiceOpened) IsEventType() string {
	return InvoiceOpenedEventType
}

// HasOccurredAt returns when this event occurred.
func (e InvoiceOpened) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e InvoiceOpened) IsErrorEvent() bool {
	return false
}
