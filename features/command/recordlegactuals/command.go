package recordlegactuals

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "RecordLegActuals"
)

// Command represents the intent to record the driven times and distance for a planned leg.
type Command struct {
	ReserveNumber    core.ReserveNumberString
	LegSequence      int
	ActualDepartAt   time.Time
	ActualArriveAt   time.Time
	ActualDistanceKm decimal.Decimal
	OccurredAt       core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	legSequence int,
	actualDepartAt time.Time,
	actualArriveAt time.Time,
	actualDistanceKm decimal.Decimal,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:    reserveNumber,
		LegSequence:      legSequence,
		ActualDepartAt:   actualDepartAt,
		ActualArriveAt:   actualArriveAt,
		ActualDistanceKm: actualDistanceKm,
		OccurredAt:       core.ToOccurredAt(occurredAt),
	}
}
