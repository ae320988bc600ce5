// Package applycredit implements the Apply Credit use case.
//
// A credit is spent in slices against charters of the same client. The
// decision reads two streams through one scope, the client's credit ledger
// and the target charter, and the shared sequence check makes sure neither a
// concurrent slice of the same credit nor a charge edit on the target slips
// past the arithmetic. A slice may not exceed the credit's remainder or the
// target's balance due, so applying credit never mints new credit.
package applycredit
