package hossummary

import (
	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// HOSSummary represents the query result holding one driver's duty history
// and the rolling compliance aggregate for the requested window.
//
// Days lists every recorded duty day in date order, not only the window, so a
// cached projection can serve any window end. Each day carries the hours and
// the classification stamped when it was recorded. WindowHours sums the
// non-exempt hours of the trailing window and Classification grades that sum,
// both derived fresh on every projection.
type HOSSummary struct {
	DriverID       core.DriverIDString
	WindowEnd      core.DutyDateString
	WindowDays     int
	Days           []core.DutyDay
	WindowHours    decimal.Decimal
	Classification core.HOSClassification
	SequenceNumber uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r HOSSummary) GetSequenceNumber() uint {
	return r.SequenceNumber
}
