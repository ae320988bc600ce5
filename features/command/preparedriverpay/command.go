package preparedriverpay

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "PrepareDriverPay"
)

// Command represents the intent to open the driver pay statement for a completed charter.
// FloatReceived is the cash float handed to the driver at dispatch.
type Command struct {
	ReserveNumber core.ReserveNumberString
	FloatReceived decimal.Decimal
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	floatReceived decimal.Decimal,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		FloatReceived: floatReceived,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
