// Package removecharge implements the Remove Charge use case.
//
// Charge lines are never deleted, they are struck through. The removal event
// carries the tax-inclusive amount that left the invoice and who asked for
// it, and a refused removal appends its own audit event for the same reason:
// accountants reconcile against attempts, not just outcomes.
package removecharge
