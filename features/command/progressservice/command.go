package progressservice

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ProgressService"
)

// Command represents the intent to advance a dispatched charter to the next
// service checkpoint. The checkpoint is named explicitly so a stale client
// cannot accidentally skip a step.
type Command struct {
	ReserveNumber core.ReserveNumberString
	Checkpoint    core.CharterStatus
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	checkpoint core.CharterStatus,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		Checkpoint:    checkpoint,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
