// Package invoicestatement implements the Invoice Statement query use case.
//
// The statement is the client-facing view of one charter's billing: every
// charge line ever recorded (struck lines included), the payments and credits
// received, and the derived totals. The invoice status evaluates lazily
// against the caller's as-of time, so an unpaid statement flips to overdue
// without any write ever happening.
package invoicestatement
