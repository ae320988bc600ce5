package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DutyDay is one recorded duty day for a driver. When a day is corrected,
// the latest record for that date wins; earlier records stay in the journal
// but not in the ledger.
type DutyDay struct {
	DutyDate         DutyDateString
	OnDutyAt         time.Time
	OffDutyAt        time.Time
	BreakMinutes     int
	OnDutyHours      decimal.Decimal
	ExemptionApplied bool
	ExemptionNote    string
	Classification   HOSClassification
	WindowHours      decimal.Decimal
}

// DutyLedger is one driver's duty history folded latest-per-date from the
// compliance journal.
type DutyLedger struct {
	DriverID DriverIDString
	Days     map[DutyDateString]DutyDay
}

// ReduceDutyLedger folds duty day records for one driver into a DutyLedger.
// Records for other drivers are ignored.
func ReduceDutyLedger(history DomainEvents, driverID DriverIDString) DutyLedger {
	ledger := DutyLedger{
		DriverID: driverID,
		Days:     make(map[DutyDateString]DutyDay),
	}

	for _, event := range history {
		e, ok := event.(DutyDayRecorded)
		if !ok || e.DriverID != driverID {
			continue
		}

		ledger.Days[e.DutyDate] = DutyDay{
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

	return ledger
}

// Dates returns the recorded duty dates in ascending order.
func (l DutyLedger) Dates() []DutyDateString {
	dates := make([]DutyDateString, 0, len(l.Days))

	for date := range l.Days {
		dates = append(dates, date)
	}

	sort.Strings(dates)

	return dates
}

// WindowHours sums non-exempt on-duty hours over the trailing window of
// windowDays calendar days ending at endDate inclusive. Duty dates in
// "2006-01-02" form compare correctly as strings, so the window bounds are
// plain string comparisons.
func (l DutyLedger) WindowHours(endDate DutyDateString, windowDays int) decimal.Decimal {
	end, err := ParseDutyDate(endDate)
	if err != nil {
		return decimal.Zero
	}

	windowStart := ToDutyDate(end.AddDate(0, 0, -(windowDays - 1)))
	sum := decimal.Zero

	for date, day := range l.Days {
		if date < windowStart || date > endDate || day.ExemptionApplied {
			continue
		}

		sum = sum.Add(day.OnDutyHours)
	}

	return sum.Round(2)
}

// GradeDay classifies the trailing window that ends at the given duty date.
func (l DutyLedger) GradeDay(date DutyDateString, policy CompliancePolicy) HOSClassification {
	return ClassifyDutyWindow(l.WindowHours(date, policy.WindowDays), policy)
}
