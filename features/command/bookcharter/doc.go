// Package bookcharter implements the Book Charter use case.
//
// Booking puts a new reserve number on the books as a quote, or as an audit
// placeholder when the charter exists only to balance the ledger. Reserve
// numbers are the immutable business key of a charter stream, so booking an
// already-used number is refused rather than merged.
package bookcharter
