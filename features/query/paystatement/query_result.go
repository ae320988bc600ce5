package paystatement

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// PayStatement represents the query result holding the driver pay statement of
// one charter. Before preparation the status is PayNone and every amount is
// zero. The suggested values come from preparation; the payable breakdown only
// exists once an adjustment recomputed it.
//
// EffectiveHourlyRate is undefined, not zero, while payable hours are zero.
type PayStatement struct {
	ReserveNumber       core.ReserveNumberString
	Status              core.PayState
	DriverID            core.DriverIDString
	PayRate             decimal.Decimal
	SuggestedHours      decimal.Decimal
	SuggestedGratuity   decimal.Decimal
	Adjusted            bool
	PayableHours        decimal.Decimal
	GratuityOwed        decimal.Decimal
	CashTip             decimal.Decimal
	FloatReceived       decimal.Decimal
	ReceiptsSubmitted   decimal.Decimal
	TotalPay            decimal.Decimal
	FloatBalance        decimal.Decimal
	NetAmountOwed       decimal.Decimal
	EffectiveHourlyRate decimal.NullDecimal
	ApprovedBy          core.ActorString
	PaidVia             string
	SequenceNumber      uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r PayStatement) GetSequenceNumber() uint {
	return r.SequenceNumber
}
