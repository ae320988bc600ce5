package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// HOSClassification grades a driver's hours-of-service standing over the
// trailing compliance window.
type HOSClassification string

const (
	HOSCompliant HOSClassification = "compliant"
	HOSWarning   HOSClassification = "warning"
	HOSViolation HOSClassification = "violation"
)

// ClassifyDutyWindow grades the total on-duty hours of a trailing window against
// the compliance policy: above the ceiling is a violation, within the warning
// margin below the ceiling is a warning, anything else is compliant.
func ClassifyDutyWindow(windowHours decimal.Decimal, policy CompliancePolicy) HOSClassification {
	if windowHours.GreaterThan(policy.CeilingHours) {
		return HOSViolation
	}

	if windowHours.GreaterThanOrEqual(policy.CeilingHours.Sub(policy.WarningMarginHours)) {
		return HOSWarning
	}

	return HOSCompliant
}

// DutyHours computes on-duty hours from duty stamps minus unpaid breaks,
// rounded to two decimal places. Malformed stamps yield zero, never a negative.
func DutyHours(onDutyAt time.Time, offDutyAt time.Time, breakMinutes int) decimal.Decimal {
	if !offDutyAt.After(onDutyAt) {
		return decimal.Zero
	}

	minutes := int(offDutyAt.Sub(onDutyAt).Minutes()) - breakMinutes
	if minutes <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}
