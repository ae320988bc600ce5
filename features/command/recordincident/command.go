package recordincident

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "RecordIncident"
)

// Command represents the intent to log a service incident against a charter.
// ReimbursementChargeID names the invoice line appended when a minor incident
// carries a reimbursement amount; it is ignored otherwise.
type Command struct {
	ReserveNumber         core.ReserveNumberString
	IncidentID            string
	DriverID              core.DriverIDString
	IncidentType          core.IncidentType
	Severity              core.IncidentSeverity
	Description           string
	ReimbursementAmount   decimal.Decimal
	ReimbursementChargeID string
	GratuityForfeited     bool
	OccurredAt            core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	incidentID string,
	driverID core.DriverIDString,
	incidentType core.IncidentType,
	severity core.IncidentSeverity,
	description string,
	reimbursementAmount decimal.Decimal,
	reimbursementChargeID string,
	gratuityForfeited bool,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:         reserveNumber,
		IncidentID:            incidentID,
		DriverID:              driverID,
		IncidentType:          incidentType,
		Severity:              severity,
		Description:           description,
		ReimbursementAmount:   reimbursementAmount,
		ReimbursementChargeID: reimbursementChargeID,
		GratuityForfeited:     gratuityForfeited,
		OccurredAt:            core.ToOccurredAt(occurredAt),
	}
}
