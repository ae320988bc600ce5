package paystatement

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectPayStatement implements the query logic to build a charter's driver pay statement.
// This is a pure function with no side effects - it takes the current domain events and a query
// and returns the projected pay statement for the specified charter.
//
// Query Logic:
//
//	GIVEN: A charter with ReserveNumber
//	WHEN: PayStatement query is executed
//	THEN: PayStatement struct is returned with the workflow status and pay breakdown
//	INCLUDES: The pay rate snapshotted at preparation, never re-read from the directory
//	EXCLUDES: Nothing; a re-preparation resets the whole statement
//
// The optional base parameter resumes from a previous projection state so the
// snapshot wrapper can fold only the records past its sequence.
func ProjectPayStatement(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...PayStatement,
) PayStatement {

	statement := PayStatement{
		ReserveNumber: query.ReserveNumber,
		Status:        core.PayNone,
	}
	if len(base) > 0 {
		statement = base[0]
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.DriverPayPrepared:
			statement = PayStatement{
				ReserveNumber:     query.ReserveNumber,
				Status:            core.PayPrepared,
				DriverID:          e.DriverID,
				PayRate:           e.PayRate,
				SuggestedHours:    e.SuggestedHours,
				SuggestedGratuity: e.SuggestedGratuity,
				FloatReceived:     e.FloatReceived,
			}

		case core.DriverPayAdjusted:
			statement.Adjusted = true
			statement.PayableHours = e.PayableHours
			statement.GratuityOwed = e.GratuityOwed
			statement.CashTip = e.CashTip
			statement.FloatReceived = e.FloatReceived
			statement.ReceiptsSubmitted = e.ReceiptsSubmitted
			statement.TotalPay = e.TotalPay
			statement.FloatBalance = e.FloatBalance
			statement.NetAmountOwed = e.NetAmountOwed

		case core.DriverPayApproved:
			statement.Status = core.PayApproved
			statement.ApprovedBy = e.ApprovedBy

		case core.DriverPaySettled:
			statement.Status = core.PaySettled
			statement.PaidVia = e.PaidVia
		}
	}

	statement.EffectiveHourlyRate = core.EffectiveHourlyRate(statement.TotalPay, statement.PayableHours)
	statement.SequenceNumber = maxSequence

	return statement
}

// BuildPayScope creates the scope for querying the driver pay events of the
// specified charter.
func BuildPayScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.DriverPayPreparedEventType,
			core.DriverPayAdjustedEventType,
			core.DriverPayApprovedEventType,
			core.DriverPaySettledEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", query.ReserveNumber)).
		Finalize()
}
