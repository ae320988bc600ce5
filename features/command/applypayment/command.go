package applypayment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	commandType = "ApplyPayment"
)

// Command represents the intent to apply a client payment to a charter.
type Command struct {
	ReserveNumber  core.ReserveNumberString
	PaymentID      string
	AmountTendered decimal.Decimal
	Method         string
	ExcessCreditID string
	ReasonCode     core.CreditReason
	OccurredAt     core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// The excessCreditID names the credit issued when the tendered amount exceeds
// the balance due, so retries reuse the same credit identity. An empty
// reasonCode defaults to an overpayment credit.
func BuildCommand(
	reserveNumber core.ReserveNumberString,
	paymentID string,
	amountTendered decimal.Decimal,
	method string,
	excessCreditID string,
	reasonCode core.CreditReason,
	occurredAt time.Time,
) Command {
	return Command{
		ReserveNumber:  reserveNumber,
		PaymentID:      paymentID,
		AmountTendered: amountTendered,
		Method:         method,
		ExcessCreditID: excessCreditID,
		ReasonCode:     reasonCode,
		OccurredAt:     core.ToOccurredAt(occurredAt),
	}
}
