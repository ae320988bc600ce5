package removecharge

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "RemoveCharge"
)

// Command represents the intent to take a billable line item off a charter.
type Command struct {
	ReserveNumber core.ReserveNumberString
	ChargeID      string
	Actor         core.ActorString
	Reason        string
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
	actor core.ActorString,
	reason string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		ChargeID:      chargeID,
		Actor:         actor,
		Reason:        reason,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
