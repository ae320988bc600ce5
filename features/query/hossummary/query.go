package hossummary

import (
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	queryType = "HOSSummary"
)

// Query represents the intent to query one driver's rolling hours-of-service
// summary for the compliance window ending at WindowEnd.
type Query struct {
	DriverID  core.DriverIDString
	WindowEnd core.DutyDateString
	Policy    core.CompliancePolicy
}

// BuildQuery creates a new Query graded against the default compliance policy.
// Callers with a custom policy set the Policy field directly.
func BuildQuery(driverID core.DriverIDString, windowEnd core.DutyDateString) Query {
	return Query{
		DriverID:  driverID,
		WindowEnd: windowEnd,
		Policy:    core.DefaultCompliancePolicy(),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// SnapshotType returns the snapshot type for this query, scoped per driver.
// WindowEnd is not part of it: the cached projection carries the driver's full
// duty history and the window aggregate is recomputed on every projection, so
// one snapshot serves any window end.
func (q Query) SnapshotType() string {
	return queryType + ":" + q.DriverID
}
