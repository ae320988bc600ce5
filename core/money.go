package core

import (
	"github.com/shopspring/decimal"
)

// Monetary amounts are fixed-point decimals rounded half-up to cents.
// Floats never touch money.

// RoundMoney rounds an amount to cents.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// LineTotal computes quantity times unit price, rounded to cents.
func LineTotal(quantity decimal.Decimal, unitPrice decimal.Decimal) decimal.Decimal {
	return RoundMoney(quantity.Mul(unitPrice))
}

// GSTAmount computes the tax on a taxable amount at the given rate, rounded to cents.
func GSTAmount(taxableAmount decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return RoundMoney(taxableAmount.Mul(rate))
}

// EffectiveHourlyRate computes total pay divided by payable hours, rounded to cents.
//
// When payable hours are zero or negative the rate is undefined, not zero: the
// returned decimal.NullDecimal is invalid and renders as null.
func EffectiveHourlyRate(totalPay decimal.Decimal, payableHours decimal.Decimal) decimal.NullDecimal {
	if payableHours.Sign() <= 0 {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: totalPay.Div(payableHours).Round(2), Valid: true}
}

// RoundUpToQuarterHour converts a duration in minutes to hours, rounded up to the
// next quarter hour. Charter time is billed in quarter-hour increments.
func RoundUpToQuarterHour(minutes int) decimal.Decimal {
	if minutes <= 0 {
		return decimal.Zero
	}

	quarters := (minutes + 14) / 15

	return decimal.NewFromInt(int64(quarters)).Div(decimal.NewFromInt(4))
}
