package bookcharter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "BookCharter"
)

// Command represents the intent to put a new charter on the books.
// AuditArtifact books the charter straight into audit review as an accounting
// placeholder that never enters the service flow.
type Command struct {
	ReserveNumber   core.ReserveNumberString
	ClientID        core.ClientIDString
	PickupAt        time.Time
	PickupLocation  string
	DropoffLocation string
	QuotedAmount    decimal.Decimal
	OutOfTown       bool
	AuditArtifact   bool
	Notes           string
	OccurredAt      core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	clientID core.ClientIDString,
	pickupAt time.Time,
	pickupLocation string,
	dropoffLocation string,
	quotedAmount decimal.Decimal,
	outOfTown bool,
	auditArtifact bool,
	notes string,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:   reserveNumber,
		ClientID:        clientID,
		PickupAt:        pickupAt.UTC(),
		PickupLocation:  pickupLocation,
		DropoffLocation: dropoffLocation,
		QuotedAmount:    quotedAmount,
		OutOfTown:       outOfTown,
		AuditArtifact:   auditArtifact,
		Notes:           notes,
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}
