package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is derived from invoice facts, never stored.
type InvoiceStatus string

const (
	InvoiceOpen          InvoiceStatus = "open"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceVoid          InvoiceStatus = "void"
)

// DeriveInvoiceStatus computes the invoice status from its facts, evaluated in order:
// paid when the balance is settled with actual payments, void when voided,
// partially paid while payments are outstanding, overdue once the due date passed,
// open otherwise.
//
// balanceDue must be the raw invoice total minus amount paid, before any void
// adjustment. An invoice settled in full and voided afterwards still reads paid;
// one voided with payments outstanding reads void.
func DeriveInvoiceStatus(
	balanceDue decimal.Decimal,
	amountPaid decimal.Decimal,
	isVoided bool,
	dueAt time.Time,
	asOf time.Time,
) InvoiceStatus {

	switch {
	case balanceDue.Sign() <= 0 && amountPaid.Sign() > 0:
		return InvoicePaid
	case isVoided:
		return InvoiceVoid
	case amountPaid.Sign() > 0 && balanceDue.Sign() > 0:
		return InvoicePartiallyPaid
	case !dueAt.IsZero() && asOf.After(dueAt) && balanceDue.Sign() > 0:
		return InvoiceOverdue
	default:
		return InvoiceOpen
	}
}
