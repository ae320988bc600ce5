package routeplan

import (
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	queryType = "RoutePlan"
)

// Query represents the intent to query the itinerary of one charter.
type Query struct {
	ReserveNumber core.ReserveNumberString
}

// BuildQuery creates a new Query for the given reserve number.
func BuildQuery(reserveNumber core.ReserveNumberString) Query {
	return Query{
		ReserveNumber: reserveNumber,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// SnapshotType returns the snapshot type for this query, scoped per charter.
func (q Query) SnapshotType() string {
	return queryType + ":" + q.ReserveNumber
}
