package shell

import (
	"fmt"
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// FiscalPeriodGuard refuses financial mutations whose effective date falls on or before
// the close of the most recently locked accounting period.
//
// The guard is a value: closing a further period returns a new guard. A zero guard
// locks nothing. Period closure is an administrative setting, not part of any charter
// stream, which is why the guard lives in the shell and not in core.
type FiscalPeriodGuard struct {
	closedThrough time.Time
}

// NewFiscalPeriodGuard creates a guard locking everything up to and including closedThrough.
// The timestamp is normalized to the end of its UTC calendar day.
func NewFiscalPeriodGuard(closedThrough time.Time) FiscalPeriodGuard {
	return FiscalPeriodGuard{closedThrough: endOfDay(closedThrough)}
}

// CloseThrough returns a guard extended to lock everything up to and including day.
// Closing an earlier day than the current close keeps the later close.
func (g FiscalPeriodGuard) CloseThrough(day time.Time) FiscalPeriodGuard {
	candidate := endOfDay(day)
	if candidate.Before(g.closedThrough) {
		return g
	}

	return FiscalPeriodGuard{closedThrough: candidate}
}

// ClosedThrough reports the end of the locked range, or the zero time when nothing is locked.
func (g FiscalPeriodGuard) ClosedThrough() time.Time {
	return g.closedThrough
}

// Check returns core.ErrLockedPeriod when effectiveAt falls inside the locked range.
func (g FiscalPeriodGuard) Check(effectiveAt time.Time) error {
	if g.closedThrough.IsZero() {
		return nil
	}

	if effectiveAt.UTC().After(g.closedThrough) {
		return nil
	}

	return fmt.Errorf("%w: effective date %s is on or before period close %s",
		core.ErrLockedPeriod,
		effectiveAt.UTC().Format("2006-01-02"),
		g.closedThrough.Format("2006-01-02"),
	)
}

// endOfDay normalizes a timestamp to the last nanosecond of its UTC calendar day.
func endOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}

	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
