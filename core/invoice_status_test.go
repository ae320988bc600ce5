package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

func Test_DeriveInvoiceStatus(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	dueFuture := now.AddDate(0, 0, 10)
	duePast := now.AddDate(0, 0, -5)

	money := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	testCases := []struct {
		name       string
		balanceDue string
		amountPaid string
		isVoided   bool
		dueAt      time.Time
		expected   core.InvoiceStatus
	}{
		{
			name:       "settled in full is paid",
			balanceDue: "0", amountPaid: "920.00", dueAt: dueFuture,
			expected: core.InvoicePaid,
		},
		{
			name:       "paid wins over void for a settled invoice",
			balanceDue: "0", amountPaid: "920.00", isVoided: true, dueAt: duePast,
			expected: core.InvoicePaid,
		},
		{
			name:       "void wins while payments are outstanding",
			balanceDue: "420.00", amountPaid: "500.00", isVoided: true, dueAt: duePast,
			expected: core.InvoiceVoid,
		},
		{
			name:       "void with no payments",
			balanceDue: "920.00", amountPaid: "0", isVoided: true, dueAt: duePast,
			expected: core.InvoiceVoid,
		},
		{
			name:       "partially paid wins over overdue",
			balanceDue: "420.00", amountPaid: "500.00", dueAt: duePast,
			expected: core.InvoicePartiallyPaid,
		},
		{
			name:       "overdue once the due date passed",
			balanceDue: "920.00", amountPaid: "0", dueAt: duePast,
			expected: core.InvoiceOverdue,
		},
		{
			name:       "open before the due date",
			balanceDue: "920.00", amountPaid: "0", dueAt: dueFuture,
			expected: core.InvoiceOpen,
		},
		{
			name:       "zero total with no payments stays open",
			balanceDue: "0", amountPaid: "0", dueAt: dueFuture,
			expected: core.InvoiceOpen,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			status := core.DeriveInvoiceStatus(money(tc.balanceDue), money(tc.amountPaid), tc.isVoided, tc.dueAt, now)

			// assert
			assert.Equal(t, tc.expected, status)
		})
	}
}
