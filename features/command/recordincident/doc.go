// Package recordincident implements the Record Incident use case.
//
// Breakdowns, complaints and delays are logged against the charter with a
// severity. A minor incident carrying a reimbursement amount bills the
// compensation line atomically with the incident. Major incidents park the
// amount on the incident record and wait for manager review, and a major
// complaint forfeits the driver's gratuity without being asked.
package recordincident
