package routeplan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// RoutePlanLeg is one leg of the itinerary with its planned values, recorded
// actuals and the minute variance between them.
type RoutePlanLeg struct {
	LegSequence       int
	FromLocation      string
	ToLocation        string
	PlannedDepartAt   time.Time
	PlannedArriveAt   time.Time
	PlannedDistanceKm decimal.Decimal
	PlannedMinutes    int
	HasActuals        bool
	ActualDepartAt    time.Time
	ActualArriveAt    time.Time
	ActualDistanceKm  decimal.Decimal
	ActualMinutes     int
	VarianceMinutes   int
}

// RoutePlan represents the query result holding a charter's itinerary in leg
// order along with the trip totals. Legs without actuals contribute nothing
// to the actual totals.
type RoutePlan struct {
	ReserveNumber       core.ReserveNumberString
	Legs                []RoutePlanLeg
	TotalPlannedMinutes int
	TotalActualMinutes  int
	TotalActualKm       decimal.Decimal
	SequenceNumber      uint
}

// GetSequenceNumber returns the highest record sequence number included in this projection.
func (r RoutePlan) GetSequenceNumber() uint {
	return r.SequenceNumber
}
