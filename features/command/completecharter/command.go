package completecharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "CompleteCharter"
)

// Command represents the intent to complete a charter at the end of service.
type Command struct {
	ReserveNumber core.ReserveNumberString
	OffDutyAt     time.Time
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	offDutyAt time.Time,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		OffDutyAt:     offDutyAt.UTC(),
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
