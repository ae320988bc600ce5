package core

// ChargeType classifies an invoice line item. The set is closed; free-form
// charge types are not accepted.
type ChargeType string

const (
	ChargeCharterFee             ChargeType = "charter_fee"
	ChargeExtraTime              ChargeType = "extra_time"
	ChargeMisc                   ChargeType = "misc_charge"
	ChargeBeverage               ChargeType = "beverage"
	ChargeDiscount               ChargeType = "discount"
	ChargeCharitableComp         ChargeType = "charitable_comp"
	ChargeBreakdownReimbursement ChargeType = "breakdown_reimbursement"
	ChargeRounding               ChargeType = "rounding"
	ChargeGratuity               ChargeType = "gratuity"
	ChargeTradeItem              ChargeType = "trade_item"
)

var knownChargeTypes = map[ChargeType]struct{}{
	ChargeCharterFee:             {},
	ChargeExtraTime:              {},
	ChargeMisc:                   {},
	ChargeBeverage:               {},
	ChargeDiscount:               {},
	ChargeCharitableComp:         {},
	ChargeBreakdownReimbursement: {},
	ChargeRounding:               {},
	ChargeGratuity:               {},
	ChargeTradeItem:              {},
}

// IsKnown reports whether t is a member of the closed charge type set.
func (t ChargeType) IsKnown() bool {
	_, ok := knownChargeTypes[t]
	return ok
}

// IsNonStandard reports whether a line of this type forces manager approval
// before the invoice can be finalized.
func (t ChargeType) IsNonStandard() bool {
	switch t {
	case ChargeDiscount, ChargeCharitableComp, ChargeBreakdownReimbursement:
		return true
	default:
		return false
	}
}

func (t ChargeType) String() string {
	return string(t)
}
