package cancelcharter

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "CancelCharter"
)

// Command represents the intent to cancel a charter before completion.
// RetentionCreditID is used only when already-applied payments have to be
// converted into a retention credit; the caller supplies it so the decision
// stays pure.
type Command struct {
	ReserveNumber     core.ReserveNumberString
	Actor             core.ActorString
	Reason            string
	RetentionCreditID string
	OccurredAt        core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	actor core.ActorString,
	reason string,
	retentionCreditID string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:     reserveNumber,
		Actor:             actor,
		Reason:            reason,
		RetentionCreditID: retentionCreditID,
		OccurredAt:        core.ToOccurredAt(occurredAt),
	}
}
