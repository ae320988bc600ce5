package adjustdriverpay

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "AdjustDriverPay"
)

// Command represents the intent to rework a prepared pay statement with the
// figures the payroll clerk settled on. FloatReceived may correct the figure
// entered at preparation time.
type Command struct {
	ReserveNumber     core.ReserveNumberString
	PayableHours      decimal.Decimal
	GratuityOwed      decimal.Decimal
	CashTip           decimal.Decimal
	FloatReceived     decimal.Decimal
	ReceiptsSubmitted decimal.Decimal
	OccurredAt        core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	payableHours decimal.Decimal,
	gratuityOwed decimal.Decimal,
	cashTip decimal.Decimal,
	floatReceived decimal.Decimal,
	receiptsSubmitted decimal.Decimal,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:     reserveNumber,
		PayableHours:      payableHours,
		GratuityOwed:      gratuityOwed,
		CashTip:           cashTip,
		FloatReceived:     floatReceived,
		ReceiptsSubmitted: receiptsSubmitted,
		OccurredAt:        core.ToOccurredAt(occurredAt),
	}
}
