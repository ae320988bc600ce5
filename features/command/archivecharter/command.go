package archivecharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ArchiveCharter"
)

// Command represents the intent to archive a settled charter.
type Command struct {
	ReserveNumber core.ReserveNumberString
	ArchivedBy    core.ActorString
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	archivedBy core.ActorString,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		ArchivedBy:    archivedBy,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
