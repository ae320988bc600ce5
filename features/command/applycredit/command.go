package applycredit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ApplyCredit"
)

// Command represents the intent to consume part of a client credit against a charter.
type Command struct {
	ClientID            core.ClientIDString
	CreditID            string
	TargetReserveNumber core.ReserveNumberString
	Amount              decimal.Decimal
	OccurredAt          core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	clientID core.ClientIDString,
	creditID string,
	targetReserveNumber core.ReserveNumberString,
	amount decimal.Decimal,
	occurredAt time.Time,
) Command {
	return Command{
		ClientID:            clientID,
		CreditID:            creditID,
		TargetReserveNumber: targetReserveNumber,
		Amount:              amount,
		OccurredAt:          core.ToOccurredAt(occurredAt),
	}
}
