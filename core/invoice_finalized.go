package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceFinalizedEventType is the event type identifier.
const InvoiceFinalizedEventType = "InvoiceFinalized"

// InvoiceFinalized represents when an invoice is frozen with its computed
// totals. After this event the charge lines are immutable and the invoice
// can only be voided, never edited.
type InvoiceFinalized struct {
	EventType          EventTypeString
	ReserveNumber      ReserveNumberString
	InvoiceNumber      string
	SubtotalTaxable    decimal.Decimal
	GSTAmount          decimal.Decimal
	SubtotalNonTaxable decimal.Decimal
	InvoiceTotal       decimal.Decimal
	ApprovedBy         ActorString
	OccurredAt         OccurredAtTS
}

// BuildInvoiceFinalized creates a new InvoiceFinalized event.
func BuildInvoiceFinalized(
	reserveNumber ReserveNumberString,
	invoiceNumber string,
	subtotalTaxable decimal.Decimal,
	gstAmount decimal.Decimal,
	subtotalNonTaxable decimal.Decimal,
	invoiceTotal decimal.Decimal,
	approvedBy ActorString,
	occurredAt time.Time,
) InvoiceFinalized {

	event := InvoiceFinalized{
		EventType:          InvoiceFinalizedEventType,
		ReserveNumber:      reserveNumber,
		InvoiceNumber:      invoiceNumber,
		SubtotalTaxable:    subtotalTaxable,
		GSTAmount:          gstAmount,
		SubtotalNonTaxable: subtotalNonTaxable,
		InvoiceTotal:       invoiceTotal,
		ApprovedBy:         approvedBy,
		OccurredAt:         ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e InvoiceFinalized) IsEventType() string {
	return InvoiceFinalizedEventType
}

// HasOccurredAt returns when this event occurred.
func (e InvoiceFinalized) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e InvoiceFinalized) IsErrorEvent() bool {
	return false
}
