package dispatchcharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "DispatchCharter"
)

// Command represents the intent to assign a driver and vehicle to a confirmed charter.
type Command struct {
	ReserveNumber core.ReserveNumberString
	DriverID      core.DriverIDString
	VehicleID     core.VehicleIDString
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	driverID core.DriverIDString,
	vehicleID core.VehicleIDString,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		DriverID:      driverID,
		VehicleID:     vehicleID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
