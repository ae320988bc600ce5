package invoicestatement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// StatementLine is one charge line on the statement. Removed lines stay on the
// statement struck-through rather than vanishing, so a printed statement and
// the journal never disagree about what was billed.
type StatementLine struct {
	ChargeID    string
	ChargeType  core.ChargeType
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Taxable     bool
	LineTotal   decimal.Decimal
	GSTAmount   decimal.Decimal
	Removed     bool
}

// StatementPayment is one applied payment row on the statement.
type StatementPayment struct {
	PaymentID     string
	AmountApplied decimal.Decimal
	Method        string
	ReceivedOn    core.DutyDateString
}

// StatementCredit is one credit consumed against this charter.
type StatementCredit struct {
	CreditID            string
	SourceReserveNumber core.ReserveNumberString
	Amount              decimal.Decimal
}

// InvoiceStatement represents the query result holding the full client-facing
// statement of one charter: lines, payments, credits and the derived totals.
// BalanceDue is the raw arithmetic invoice_total minus amount_paid; settlement
// rules for cancelled charters and voided invoices live in the status, not here.
type InvoiceStatement struct {
	ReserveNumber      core.ReserveNumberString
	ClientID           core.ClientIDString
	InvoiceNumber      string
	IssuedAt           time.Time
	DueAt              time.Time
	Finalized          bool
	Voided             bool
	Cancelled          bool
	Lines              []StatementLine
	Payments           []StatementPayment
	Credits            []StatementCredit
	SubtotalTaxable    decimal.Decimal
	GSTAmount          decimal.Decimal
	SubtotalNonTaxable decimal.Decimal
	InvoiceTotal       decimal.Decimal
	AmountPaid         decimal.Decimal
	BalanceDue         decimal.Decimal
	Status             core.InvoiceStatus
	SequenceNumber     uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r InvoiceStatement) GetSequenceNumber() uint {
	return r.SequenceNumber
}
