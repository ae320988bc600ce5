package lockcharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "LockCharter"
)

// Command represents the intent to freeze a charter against mutation.
type Command struct {
	ReserveNumber core.ReserveNumberString
	Reason        string
	LockedBy      core.ActorString
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	reason string,
	lockedBy core.ActorString,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		Reason:        reason,
		LockedBy:      lockedBy,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
