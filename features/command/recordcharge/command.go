package recordcharge

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "RecordCharge"
)

// Command represents the intent to add a billable line item to a charter.
// Negative quantities or unit prices are legal; discounts and write-downs are
// ordinary lines with negative totals.
type Command struct {
	ReserveNumber core.ReserveNumberString
	ChargeID      string
	ChargeType    core.ChargeType
	Description   string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Taxable       bool
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	chargeID string,
	chargeType core.ChargeType,
	description string,
	quantity decimal.Decimal,
	unitPrice decimal.Decimal,
	taxable bool,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber: reserveNumber,
		ChargeID:      chargeID,
		ChargeType:    chargeType,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Taxable:       taxable,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
