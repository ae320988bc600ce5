package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

func Test_LineTotal_MultipliesAndRoundsToCents(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  string
		unitPrice string
		expected  string
	}{
		{name: "whole hours", quantity: "4", unitPrice: "125.00", expected: "500.00"},
		{name: "quarter hours", quantity: "2.75", unitPrice: "120.00", expected: "330.00"},
		{name: "rounds half up", quantity: "3", unitPrice: "33.335", expected: "100.01"},
		{name: "zero quantity", quantity: "0", unitPrice: "99.99", expected: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			total := core.LineTotal(decimal.RequireFromString(tc.quantity), decimal.RequireFromString(tc.unitPrice))

			// assert
			assert.Equal(t, tc.expected, total.StringFixed(2), "line total should round to cents")
		})
	}
}

func Test_GSTAmount_AppliesRate(t *testing.T) {
	// arrange
	rate := core.DefaultTaxPolicy().GSTRate

	// act + assert
	assert.Equal(t, "40.00", core.GSTAmount(decimal.NewFromInt(800), rate).StringFixed(2))
	assert.Equal(t, "16.67", core.GSTAmount(decimal.RequireFromString("333.33"), rate).StringFixed(2))
	assert.Equal(t, "0.00", core.GSTAmount(decimal.Zero, rate).StringFixed(2))
}

func Test_EffectiveHourlyRate_DividesTotalByHours(t *testing.T) {
	// act
	rate := core.EffectiveHourlyRate(decimal.NewFromInt(920), decimal.NewFromInt(8))

	// assert
	assert.True(t, rate.Valid, "rate should be defined for positive hours")
	assert.Equal(t, "115.00", rate.Decimal.StringFixed(2))
}

func Test_EffectiveHourlyRate_UndefinedWithoutHours(t *testing.T) {
	// act
	zeroHours := core.EffectiveHourlyRate(decimal.NewFromInt(500), decimal.Zero)
	negativeHours := core.EffectiveHourlyRate(decimal.NewFromInt(500), decimal.NewFromInt(-2))

	// assert - undefined, not zero: a zero rate would misstate the statement
	assert.False(t, zeroHours.Valid, "rate should be undefined for zero hours")
	assert.False(t, negativeHours.Valid, "rate should be undefined for negative hours")
}

func Test_RoundUpToQuarterHour(t *testing.T) {
	testCases := []struct {
		name     string
		minutes  int
		expected string
	}{
		{name: "zero minutes", minutes: 0, expected: "0"},
		{name: "one minute rounds up", minutes: 1, expected: "0.25"},
		{name: "exact quarter", minutes: 15, expected: "0.25"},
		{name: "just over a quarter", minutes: 16, expected: "0.5"},
		{name: "exact hours", minutes: 120, expected: "2"},
		{name: "just over two hours", minutes: 121, expected: "2.25"},
		{name: "negative clamps to zero", minutes: -30, expected: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			hours := core.RoundUpToQuarterHour(tc.minutes)

			// assert
			assert.True(t, hours.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s hours, got %s", tc.expected, hours.String())
		})
	}
}

func Test_RoundMoney_HalfUp(t *testing.T) {
	assert.Equal(t, "10.01", core.RoundMoney(decimal.RequireFromString("10.005")).StringFixed(2))
	assert.Equal(t, "10.00", core.RoundMoney(decimal.RequireFromString("10.004")).StringFixed(2))
}
