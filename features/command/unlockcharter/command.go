package unlockcharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "UnlockCharter"
)

// Command represents the intent to release the administrative lock on a charter.
type Command struct {
	ReserveNumber core.ReserveNumberString
	UnlockedBy    core.ActorString
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	unlockedBy core.ActorString,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		UnlockedBy:    unlockedBy,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
