package invoicestatement

import (
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	queryType = "InvoiceStatement"
)

// Query represents the intent to query the invoice statement of one charter.
// AsOf anchors the overdue determination; it does not filter events.
type Query struct {
	ReserveNumber core.ReserveNumberString
	AsOf          time.Time
}

// BuildQuery creates a new Query for the given reserve number, evaluated as of the given time.
func BuildQuery(reserveNumber core.ReserveNumberString, asOf time.Time) Query {
	return Query{
		ReserveNumber: reserveNumber,
		AsOf:          asOf.UTC(),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// SnapshotType returns the snapshot type for this query, scoped per charter.
// AsOf is deliberately excluded: the statement facts are the same for every
// as-of time, only the derived status differs.
func (q Query) SnapshotType() string {
	return queryType + ":" + q.ReserveNumber
}
