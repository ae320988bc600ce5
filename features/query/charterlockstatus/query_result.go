package charterlockstatus

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// CharterLockStatus represents the query result holding a charter's lock flag
// and presented lifecycle status. Status includes the paid promotion: an
// invoiced charter whose balance is settled presents as paid.
//
// RawStatus, InvoiceVoided, TotalCharges and TotalPayments are the facts the
// promotion is derived from. They ride along in the result so an incremental
// resume from a snapshot can re-evaluate the promotion instead of trusting a
// stale presented status.
type CharterLockStatus struct {
	ReserveNumber  core.ReserveNumberString
	Exists         bool
	IsLocked       bool
	Status         core.CharterStatus
	RawStatus      core.CharterStatus
	InvoiceVoided  bool
	TotalCharges   decimal.Decimal
	TotalPayments  decimal.Decimal
	SequenceNumber uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r CharterLockStatus) GetSequenceNumber() uint {
	return r.SequenceNumber
}
