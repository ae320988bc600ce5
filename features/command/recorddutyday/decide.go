package recorddutyday

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine how a duty day enters the compliance journal.
// This is a pure function with no side effects - it takes the driver's duty history and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A driver's duty history
//	WHEN: RecordDutyDay command is received
//	THEN: DutyDayRecorded event is generated with on-duty hours, the trailing
//	      window total and the hours-of-service classification computed now
//	IDEMPOTENCY: If an identical record for the duty date is already on file,
//	      no event is generated (no-op)
//
// Re-recording a date with different stamps is a correction; the ledger takes
// the latest record per date. Exempt days record their hours but classify
// compliant and stay out of the trailing window total.
func Decide(history core.DomainEvents, command Command, compliance core.CompliancePolicy) core.DecisionResult {
	ledger := core.ReduceDutyLedger(history, command.DriverID)

	if day, found := ledger.Days[command.DutyDate]; found &&
		day.OnDutyAt.Equal(command.OnDutyAt) &&
		day.OffDutyAt.Equal(command.OffDutyAt) &&
		day.BreakMinutes == command.BreakMinutes &&
		day.ExemptionApplied == command.ExemptionApplied &&
		day.ExemptionNote == command.ExemptionNote {

		return core.IdempotentDecision()
	}

	onDutyHours := core.DutyHours(command.OnDutyAt, command.OffDutyAt, command.BreakMinutes)

	// Fold the candidate day in before summing, so a correction replaces the
	// earlier hours for its date instead of double counting them.
	ledger.Days[command.DutyDate] = core.DutyDay{
		DutyDate:         command.DutyDate,
		OnDutyAt:         command.OnDutyAt,
		OffDutyAt:        command.OffDutyAt,
		BreakMinutes:     command.BreakMinutes,
		OnDutyHours:      onDutyHours,
		ExemptionApplied: command.ExemptionApplied,
		ExemptionNote:    command.ExemptionNote,
	}

	windowHours := ledger.WindowHours(command.DutyDate, compliance.WindowDays)

	classification := core.HOSCompliant
	if !command.ExemptionApplied {
		classification = core.ClassifyDutyWindow(windowHours, compliance)
	}

	return core.SuccessDecision(
		core.BuildDutyDayRecorded(
			command.DriverID,
			command.DutyDate,
			command.OnDutyAt,
			command.OffDutyAt,
			command.BreakMinutes,
			onDutyHours,
			command.ExemptionApplied,
			command.ExemptionNote,
			classification,
			windowHours,
			command.OccurredAt,
		),
	)
}

// BuildDriverScope creates the scope for querying one driver's duty day records.
// The stream key is the driver; charters play no part in this decision.
func BuildDriverScope(driverID core.DriverIDString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.DutyDayRecordedEventType).
		AndAnyTagOf(charterstore.T("DriverID", driverID)).
		Finalize()
}
