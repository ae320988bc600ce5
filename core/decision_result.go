package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// This enables type-safe, functional programming style decision modeling.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(events...), ErrorDecision(event, err), or
// RefusedDecision(err). Do not construct DecisionResult directly.
type DecisionResult struct {
	Outcome string        // "idempotent", "success", "error", or "refused"
	Events  []DomainEvent // empty for idempotent and refused decisions
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
	refusedOutcome    = "refused"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{
		Outcome: idempotentOutcome,
	}
}

// SuccessDecision creates a DecisionResult indicating a successful state change with
// one or more events to append atomically.
func SuccessDecision(event DomainEvent, additionalEvents ...DomainEvent) DecisionResult {
	events := []DomainEvent{event}
	events = append(events, additionalEvents...)

	return DecisionResult{
		Outcome: successOutcome,
		Events:  events,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation with an
// audit event to append. Used for destructive operations whose refusal must leave a trace.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Events:  []DomainEvent{event},
		Err:     err,
	}
}

// RefusedDecision creates a DecisionResult indicating a business rule violation that
// appends nothing. Used for guards where an audit trail is not required.
func RefusedDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: refusedOutcome,
		Err:     err,
	}
}

// HasEventsToAppend returns true if there are events to append to the journal.
func (r DecisionResult) HasEventsToAppend() bool {
	return len(r.Events) > 0
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome || r.Outcome == refusedOutcome {
		return r.Err
	}

	return nil
}
