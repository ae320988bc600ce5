package resolveincident

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ResolveIncident"
)

// Command represents the intent to close out a logged incident after review.
type Command struct {
	ReserveNumber core.ReserveNumberString
	IncidentID    string
	ResolvedBy    core.ActorString
	Notes         string
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	incidentID string,
	resolvedBy core.ActorString,
	notes string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		IncidentID:    incidentID,
		ResolvedBy:    resolvedBy,
		Notes:         notes,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
