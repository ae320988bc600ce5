package recordnfdcharge

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "RecordNFDCharge"
)

// Command represents the intent to bill the flat returned-payment fee to a charter.
type Command struct {
	ReserveNumber core.ReserveNumberString
	ChargeID      string
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	chargeID string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		ChargeID:      chargeID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
