package routeplan

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ProjectRoutePlan implements the query logic to build a charter's itinerary.
// This is a pure function with no side effects - it takes the current domain events and a query
// and returns the projected route plan for the specified charter.
//
// Query Logic:
//
//	GIVEN: A charter with ReserveNumber
//	WHEN: RoutePlan query is executed
//	THEN: RoutePlan struct is returned with legs in sequence order and trip totals
//	INCLUDES: Planned values, recorded actuals and the minute variance per leg
//	EXCLUDES: Actuals invalidated by a later re-plan of the same leg
//
// The optional base parameter resumes from a previous projection state so the
// snapshot wrapper can fold only the records past its sequence.
func ProjectRoutePlan(
	history core.DomainEvents,
	query Query,
	maxSequence uint,
	base ...RoutePlan,
) RoutePlan {

	legs := make(map[int]RoutePlanLeg)
	if len(base) > 0 {
		for _, leg := range base[0].Legs {
			legs[leg.LegSequence] = leg
		}
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.RouteLegPlanned:
			// Re-planning a leg replaces the plan and invalidates previous actuals.
			legs[e.LegSequence] = RoutePlanLeg{
				LegSequence:       e.LegSequence,
				FromLocation:      e.FromLocation,
				ToLocation:        e.ToLocation,
				PlannedDepartAt:   e.PlannedDepartAt,
				PlannedArriveAt:   e.PlannedArriveAt,
				PlannedDistanceKm: e.PlannedDistanceKm,
			}

		case core.RouteLegActualsRecorded:
			leg, found := legs[e.LegSequence]
			if !found {
				continue
			}

			leg.HasActuals = true
			leg.ActualDepartAt = e.ActualDepartAt
			leg.ActualArriveAt = e.ActualArriveAt
			leg.ActualDistanceKm = e.ActualDistanceKm
			legs[e.LegSequence] = leg
		}
	}

	plan := RoutePlan{
		ReserveNumber: query.ReserveNumber,
		Legs:          make([]RoutePlanLeg, 0, len(legs)),
		TotalActualKm: decimal.Zero,
	}

	for _, leg := range legs {
		leg.PlannedMinutes = legMinutes(leg.PlannedDepartAt, leg.PlannedArriveAt)

		if leg.HasActuals {
			leg.ActualMinutes = legMinutes(leg.ActualDepartAt, leg.ActualArriveAt)
			leg.VarianceMinutes = leg.ActualMinutes - leg.PlannedMinutes
			plan.TotalActualMinutes += leg.ActualMinutes
			plan.TotalActualKm = plan.TotalActualKm.Add(leg.ActualDistanceKm)
		} else {
			leg.ActualMinutes = 0
			leg.VarianceMinutes = 0
		}

		plan.TotalPlannedMinutes += leg.PlannedMinutes
		plan.Legs = append(plan.Legs, leg)
	}

	slices.SortFunc(plan.Legs, func(a, b RoutePlanLeg) int {
		return a.LegSequence - b.LegSequence
	})

	plan.SequenceNumber = maxSequence

	return plan
}

// legMinutes converts a depart/arrive pair to whole minutes. Malformed stamps
// yield zero, never a negative.
func legMinutes(departAt time.Time, arriveAt time.Time) int {
	if !arriveAt.After(departAt) {
		return 0
	}

	return int(arriveAt.Sub(departAt).Minutes())
}

// BuildRouteScope creates the scope for querying the routing events of the
// specified charter.
func BuildRouteScope(query Query) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(
			core.RouteLegPlannedEventType,
			core.RouteLegActualsRecordedEventType,
		).
		AndAnyTagOf(charterstore.T("ReserveNumber", query.ReserveNumber)).
		Finalize()
}
