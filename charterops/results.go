package charterops

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// OperationResult is the outcome of a facade operation. Success covers both
// a fresh state change and an operation that was already done; Message says
// what happened in back-office language. A refused operation comes back with
// Success false and the refusal in Message. Infrastructure failures are
// returned as errors instead and never folded in here.
type OperationResult struct {
	Success bool
	Message string
}

// CancelResult reports a cancellation outcome including how many charge
// lines the cancellation struck from the invoice.
type CancelResult struct {
	Success            bool
	Message            string
	DeletedChargeCount int
}

// DeleteChargeResult reports a charge deletion outcome including the gross
// amount (line total plus GST) that was struck.
type DeleteChargeResult struct {
	Success       bool
	Message       string
	DeletedAmount decimal.Decimal
}

// NFDChargeResult reports the outcome of billing a returned-payment fee,
// including the id of the charge line it recorded.
type NFDChargeResult struct {
	Success  bool
	Message  string
	ChargeID string
}

// LockStatus is the administrative lock view of a charter.
type LockStatus struct {
	IsLocked bool
	Status   core.CharterStatus
}

// Balance is the money position of a charter.
type Balance struct {
	TotalCharges  decimal.Decimal
	TotalPayments decimal.Decimal
	BalanceDue    decimal.Decimal
}

// ReconcileReport summarizes one bank feed reconciliation run.
// AlreadyApplied counts postings the journal had seen before, Skipped counts
// postings the domain refused (unknown reserve number, voided invoice).
type ReconcileReport struct {
	Applied        int
	AlreadyApplied int
	Skipped        int
}
