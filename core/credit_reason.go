package core

// CreditReason explains why a credit entered the ledger.
type CreditReason string

const (
	CreditUniformInstallment CreditReason = "uniform_installment"
	CreditCancelledRetention CreditReason = "cancelled_retention"
	CreditOverpay            CreditReason = "overpay"
	CreditMultiCharterPrepay CreditReason = "multi_charter_prepay"
	CreditMixedOverpay       CreditReason = "mixed_overpay"
)

// IsKnown reports whether r is a member of the closed reason code set.
func (r CreditReason) IsKnown() bool {
	switch r {
	case CreditUniformInstallment, CreditCancelledRetention, CreditOverpay,
		CreditMultiCharterPrepay, CreditMixedOverpay:
		return true
	default:
		return false
	}
}
