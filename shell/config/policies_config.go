package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/shell"
)

const (
	envGSTRate             = "CHARTER_GST_RATE"
	envHOSCeilingHours     = "CHARTER_HOS_CEILING_HOURS"
	envHOSWarningMargin    = "CHARTER_HOS_WARNING_MARGIN_HOURS"
	envHOSWindowDays       = "CHARTER_HOS_WINDOW_DAYS"
	envApprovalThreshold   = "CHARTER_APPROVAL_THRESHOLD"
	envBillingNetDays      = "CHARTER_BILLING_NET_DAYS"
	envPeriodClosedThrough = "CHARTER_PERIOD_CLOSED_THROUGH"
)

// OperationsPolicies bundles the business policies loaded from the environment.
// Zero configuration yields the statutory defaults.
type OperationsPolicies struct {
	Tax        core.TaxPolicy
	Compliance core.CompliancePolicy
	Approval   core.ApprovalPolicy
	Billing    core.BillingPolicy
}

// LoadOperationsPolicies reads policy overrides from the environment on top of
// the defaults. Invalid values are reported as errors rather than silently
// falling back, so a typo in an override cannot change tax math unnoticed.
func LoadOperationsPolicies() (OperationsPolicies, error) {
	LoadEnv()

	policies := OperationsPolicies{
		Tax:        core.DefaultTaxPolicy(),
		Compliance: core.DefaultCompliancePolicy(),
		Approval:   core.DefaultApprovalPolicy(),
		Billing:    core.DefaultBillingPolicy(),
	}

	if err := overrideDecimal(envGSTRate, &policies.Tax.GSTRate); err != nil {
		return OperationsPolicies{}, err
	}

	if err := overrideDecimal(envHOSCeilingHours, &policies.Compliance.CeilingHours); err != nil {
		return OperationsPolicies{}, err
	}

	if err := overrideDecimal(envHOSWarningMargin, &policies.Compliance.WarningMarginHours); err != nil {
		return OperationsPolicies{}, err
	}

	if err := overrideInt(envHOSWindowDays, &policies.Compliance.WindowDays); err != nil {
		return OperationsPolicies{}, err
	}

	if err := overrideDecimal(envApprovalThreshold, &policies.Approval.InvoiceTotalThreshold); err != nil {
		return OperationsPolicies{}, err
	}

	if err := overrideInt(envBillingNetDays, &policies.Billing.NetDays); err != nil {
		return OperationsPolicies{}, err
	}

	return policies, nil
}

// LoadFiscalPeriodGuard builds the period guard from the environment.
// The close date is a "2006-01-02" day; an unset variable yields a guard
// that locks nothing.
func LoadFiscalPeriodGuard() (shell.FiscalPeriodGuard, error) {
	LoadEnv()

	raw := os.Getenv(envPeriodClosedThrough)
	if raw == "" {
		return shell.FiscalPeriodGuard{}, nil
	}

	closedThrough, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return shell.FiscalPeriodGuard{}, fmt.Errorf("invalid value for %s: %w", envPeriodClosedThrough, err)
	}

	return shell.NewFiscalPeriodGuard(closedThrough), nil
}

func overrideDecimal(key string, target *decimal.Decimal) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	*target = value

	return nil
}

func overrideInt(key string, target *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	*target = value

	return nil
}
