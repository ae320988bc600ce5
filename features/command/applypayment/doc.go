// Package applypayment implements the Apply Payment use case.
//
// Payments settle the balance due first and spill the rest into the client's
// credit ledger in the same append. The PaymentID is the gateway's identity
// for the transaction, which makes duplicate webhook deliveries a no-op.
// Cancelled charters accept payments too; with no balance to settle the full
// amount becomes credit, which is how retained deposits are kept on the books.
package applypayment
