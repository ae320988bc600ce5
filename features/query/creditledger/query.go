package creditledger

import (
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

const (
	queryType = "CreditLedger"
)

// Query represents the intent to query one client's credit ledger.
type Query struct {
	ClientID core.ClientIDString
}

// BuildQuery creates a new Query for the given client.
func BuildQuery(clientID core.ClientIDString) Query {
	return Query{
		ClientID: clientID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// SnapshotType returns the snapshot type for this query, scoped per client.
func (q Query) SnapshotType() string {
	return queryType + ":" + q.ClientID
}
