package approvedriverpay

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ApproveDriverPay"
)

// Command represents the intent to sign off a prepared pay statement, freezing its figures.
type Command struct {
	ReserveNumber core.ReserveNumberString
	ApprovedBy    core.ActorString
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	approvedBy core.ActorString,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		ApprovedBy:    approvedBy,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
