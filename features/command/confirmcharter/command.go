package confirmcharter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ConfirmCharter"
)

// Command represents the intent to confirm a quoted charter.
type Command struct {
	ReserveNumber   core.ReserveNumberString
	DepositRequired decimal.Decimal
	OccurredAt      core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	depositRequired decimal.Decimal,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:   reserveNumber,
		DepositRequired: depositRequired,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}
