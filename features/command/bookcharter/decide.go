package bookcharter

import (
	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// Decide implements the business logic to determine whether a charter can be booked.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the events that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A reserve number
//	WHEN: BookCharter command is received
//	THEN: CharterBooked event is generated; AuditArtifact books into audit review
//	REFUSED: core.ErrDuplicateReserveNumber if the reserve number is already on the books
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	view := core.ReduceCharter(history)

	if view.Exists {
		return core.RefusedDecision(core.ErrDuplicateReserveNumber)
	}

	return core.SuccessDecision(
		core.BuildCharterBooked(
			command.ReserveNumber,
			command.ClientID,
			command.PickupAt,
			command.PickupLocation,
			command.DropoffLocation,
			command.QuotedAmount,
			command.OutOfTown,
			command.AuditArtifact,
			command.Notes,
			command.OccurredAt,
		),
	)
}

// BuildCharterScope creates the scope for querying all events relevant for this
// decision: only a previous booking of the same reserve number matters here.
func BuildCharterScope(reserveNumber core.ReserveNumberString) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyEventTypeOf(core.CharterBookedEventType).
		AndAnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}
