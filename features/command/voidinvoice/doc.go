// Package voidinvoice implements the Void Invoice use case.
//
// Voiding is the undo for a finalized invoice. Collected money is not
// refunded by the void; it converts into a client credit memo appended in
// the same decision, so the client account and the charter books stay
// consistent even when the void and a payment race.
package voidinvoice
