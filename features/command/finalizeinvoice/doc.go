// Package finalizeinvoice implements the Finalize Invoice use case.
//
// Finalization freezes the invoice totals computed from the active charge
// lines. Two gates sit in front of it: invoices over the policy threshold or
// carrying non-standard lines need a named approver, and an unresolved major
// incident blocks finalization entirely because its review can still change
// the bill. After finalization only a void reopens the charter for edits.
package finalizeinvoice
