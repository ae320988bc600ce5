package charterbalance

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// CharterBalance represents the query result holding a charter's money position.
// TotalCharges covers active charge lines including GST, TotalPayments covers
// applied payments plus consumed credits. A charter that was never booked
// projects to all zeros.
type CharterBalance struct {
	ReserveNumber  core.ReserveNumberString
	TotalCharges   decimal.Decimal
	TotalPayments  decimal.Decimal
	BalanceDue     decimal.Decimal
	Cancelled      bool
	InvoiceVoided  bool
	SequenceNumber uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r CharterBalance) GetSequenceNumber() uint {
	return r.SequenceNumber
}
