package hossummary

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectHOSSummary implements the query logic to build one driver's
// hours-of-service summary.
// This is a pure function with no side effects - it takes the current domain events and a query
// and returns the projected summary for the specified driver and window end.
//
// Query Logic:
//
//	GIVEN: A driver with DriverID
//	WHEN: HOSSummary query is executed
//	THEN: HOSSummary struct is returned with every recorded duty day and the
//	      trailing window aggregate graded for WindowEnd
//	INCLUDES: Exempt days and days outside the window (listed, not summed)
//	EXCLUDES: Duty days recorded for other drivers
//
// The aggregate is recomputed from the carried days on every projection with
// the same window arithmetic the write path grades with, so a correction to a
// past day flows into the summary as soon as its record lands.
func ProjectHOSSummary(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...HOSSummary,
) HOSSummary {

	ledger := core.DutyLedger{
		DriverID: query.DriverID,
		Days:     make(map[core.DutyDateString]core.DutyDay),
	}

	if len(base) > 0 {
		for _, day := range base[0].Days {
			ledger.Days[day.DutyDate] = day
		}
	}

	for _, event := range history {
		e, ok := event.(core.DutyDayRecorded)
		if !ok || e.DriverID != query.DriverID {
			continue
		}

		// A later record for the same date is a correction and supersedes it.
		ledger.Days[e.DutyDate] = core.DutyDay{
			DutyDate:         e.DutyDate,
			OnDutyAt:         e.OnDutyAt,
			OffDutyAt:        e.OffDutyAt,
			BreakMinutes:     e.BreakMinutes,
			OnDutyHours:      e.OnDutyHours,
			ExemptionApplied: e.ExemptionApplied,
			ExemptionNote:    e.ExemptionNote,
			Classification:   e.Classification,
			WindowHours:      e.WindowHours,
		}
	}

	summary := HOSSummary{
		DriverID:   query.DriverID,
		WindowEnd:  query.WindowEnd,
		WindowDays: query.Policy.WindowDays,
		Days:       make([]core.DutyDay, 0, len(ledger.Days)),
	}

	for _, date := range ledger.Dates() {
		summary.Days = append(summary.Days, ledger.Days[date])
	}

	summary.WindowHours = ledger.WindowHours(query.WindowEnd, query.Policy.WindowDays)
	summary.Classification = core.ClassifyDutyWindow(summary.WindowHours, query.Policy)
	summary.SequenceNumber = maxSequence

	return summary
}

// BuildDutyScope creates the scope for querying one driver's duty day records.
// The scope is not window-bounded; the cached projection needs the full
// history to serve any window end.
func BuildDutyScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.DutyDayRecordedEventType).
		AndAnyTagOf(charterstore.T("DriverID", query.DriverID)).
		Finalize()
}
