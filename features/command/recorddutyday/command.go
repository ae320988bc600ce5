package recorddutyday

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "RecordDutyDay"
)

// Command represents the intent to enter a driver's duty day into the compliance journal.
// DutyDate is derived from the on-duty stamp so the calendar day always matches the stamps.
type Command struct {
	DriverID         core.DriverIDString
	DutyDate         core.DutyDateString
	OnDutyAt         time.Time
	OffDutyAt        time.Time
	BreakMinutes     int
	ExemptionApplied bool
	ExemptionNote    string
	OccurredAt       core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	driverID core.DriverIDString,
	onDutyAt time.Time,
	offDutyAt time.Time,
	breakMinutes int,
	exemptionApplied bool,
	exemptionNote string,
	occurredAt time.Time,
) Command {
	return Command{
		DriverID:         driverID,
		DutyDate:         core.ToDutyDate(onDutyAt),
		OnDutyAt:         onDutyAt,
		OffDutyAt:        offDutyAt,
		BreakMinutes:     breakMinutes,
		ExemptionApplied: exemptionApplied,
		ExemptionNote:    exemptionNote,
		OccurredAt:       core.ToOccurredAt(occurredAt),
	}
}
