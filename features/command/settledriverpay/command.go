package settledriverpay

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "SettleDriverPay"
)

// Command represents the intent to pay out an approved statement.
// PaidVia names the payout channel, e.g. a payroll run or a cash drawer entry.
type Command struct {
	ReserveNumber core.ReserveNumberString
	PaidVia       string
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	paidVia string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		PaidVia:       paidVia,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
