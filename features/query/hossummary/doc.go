// Package hossummary implements the Hours of Service Summary query use case.
//
// The summary folds one driver's duty day records into a ledger and grades
// the trailing compliance window ending at the requested date, using the same
// window arithmetic the duty recording path grades with. The handler is meant
// to run behind the generic snapshot wrapper: the cached projection carries
// the full duty history keyed by driver, and any new duty day advances the
// stream sequence, so a stale cache refreshes itself by incremental replay on
// the next read.
package hossummary
