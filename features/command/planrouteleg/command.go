package planrouteleg

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "PlanRouteLeg"
)

// Command represents the intent to add a planned leg to a charter's route sheet.
type Command struct {
	ReserveNumber     core.ReserveNumberString
	LegSequence       int
	FromLocation      string
	ToLocation        string
	PlannedDepartAt   time.Time
	PlannedArriveAt   time.Time
	PlannedDistanceKm decimal.Decimal
	OccurredAt        core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	legSequence int,
	fromLocation string,
	toLocation string,
	plannedDepartAt time.Time,
	plannedArriveAt time.Time,
	plannedDistanceKm decimal.Decimal,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:     reserveNumber,
		LegSequence:       legSequence,
		FromLocation:      fromLocation,
		ToLocation:        toLocation,
		PlannedDepartAt:   plannedDepartAt,
		PlannedArriveAt:   plannedArriveAt,
		PlannedDistanceKm: plannedDistanceKm,
		OccurredAt:        core.ToOccurredAt(occurredAt),
	}
}
