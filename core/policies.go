package core

import "github.com/shopspring/decimal"

// TaxPolicy holds the sales tax rate applied to taxable charge lines.
type TaxPolicy struct {
	GSTRate decimal.Decimal
}

// DefaultTaxPolicy returns the 5% GST applied to Alberta charters.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{GSTRate: decimal.New(5, -2)}
}

// CompliancePolicy holds the hours-of-service limits for duty grading.
type CompliancePolicy struct {
	CeilingHours       decimal.Decimal
	WarningMarginHours decimal.Decimal
	WindowDays         int
}

// DefaultCompliancePolicy returns the 120 hours / 14 days federal ceiling
// with a 10 hour warning margin.
func DefaultCompliancePolicy() CompliancePolicy {
	return CompliancePolicy{
		CeilingHours:       decimal.NewFromInt(120),
		WarningMarginHours: decimal.NewFromInt(10),
		WindowDays:         14,
	}
}

// ApprovalPolicy holds the threshold above which invoice finalization
// requires an explicit approver.
type ApprovalPolicy struct {
	InvoiceTotalThreshold decimal.Decimal
}

// DefaultApprovalPolicy returns the $5000 finalization threshold.
func DefaultApprovalPolicy() ApprovalPolicy {
	return ApprovalPolicy{InvoiceTotalThreshold: decimal.NewFromInt(5000)}
}

// BillingPolicy holds invoicing terms applied when a charter completes.
type BillingPolicy struct {
	NetDays int
}

// DefaultBillingPolicy returns net 30 payment terms.
func DefaultBillingPolicy() BillingPolicy {
	return BillingPolicy{NetDays: 30}
}

const NFDChargeDescription = "NFD returned payment fee"

// NFDChargeAmount returns the flat fee charged when a client payment bounces.
func NFDChargeAmount() decimal.Decimal {
	return decimal.NewFromInt(25)
}
