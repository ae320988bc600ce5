package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DriverPayAdjustedEventType is the event type identifier.
const DriverPayAdjustedEventType = "DriverPayAdjusted"

// DriverPayAdjusted represents when a prepared pay statement is reworked
// with the figures the payroll clerk settled on. The derived totals are
// recorded alongside the inputs so the statement stands on its own.
type DriverPayAdjusted struct {
	EventType         EventTypeString
	ReserveNumber     ReserveNumberString
	PayableHours      decimal.Decimal
	GratuityOwed      decimal.Decimal
	CashTip           decimal.Decimal
	FloatReceived     decimal.Decimal
	ReceiptsSubmitted decimal.Decimal
	TotalPay          decimal.Decimal
	FloatBalance      decimal.Decimal
	NetAmountOwed     decimal.Decimal
	OccurredAt        OccurredAtTS
}

// BuildDriverPayAdjusted creates a new DriverPayAdjusted event.
func BuildDriverPayAdjusted(
	reserveNumber ReserveNumberString,
	payableHours decimal.Decimal,
	gratuityOwed decimal.Decimal,
	cashTip decimal.Decimal,
	floatReceived decimal.Decimal,
	receiptsSubmitted decimal.Decimal,
	totalPay decimal.Decimal,
	floatBalance decimal.Decimal,
	netAmountOwed decimal.Decimal,
	occurredAt time.Time,
) DriverPayAdjusted {

	event := DriverPayAdjusted{
		EventType:         DriverPayAdjustedEventType,
		ReserveNumber:     reserveNumber,
		PayableHours:      payableHours,
		GratuityOwed:      gratuityOwed,
		CashTip:           cashTip,
		FloatReceived:     floatReceived,
		ReceiptsSubmitted: receiptsSubmitted,
		TotalPay:          totalPay,
		FloatBalance:      floatBalance,
		NetAmountOwed:     netAmountOwed,
		OccurredAt:        ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e DriverPayAdjusted) IsEventType() string {
	return DriverPayAdjustedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DriverPayAdjusted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DriverPayAdjusted) IsErrorEvent() bool {
	return false
}
