package voidinvoice

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "VoidInvoice"
)

// Command represents the intent to void a charter's invoice so its lines can be corrected.
type Command struct {
	ReserveNumber core.ReserveNumberString
	Reason        string
	VoidedBy      core.ActorString
	VoidCreditID  string
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// The voidCreditID names the credit memo issued when payments were already
// applied against the invoice, so retries reuse the same credit identity.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	reason string,
	voidedBy core.ActorString,
	voidCreditID string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		Reason:        reason,
		VoidedBy:      voidedBy,
		VoidCreditID:  voidCreditID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
