package core

// CharterStatus is the lifecycle state of a charter. The in-service checkpoints
// between dispatch and completion are full lifecycle states of their own.
type CharterStatus string

const (
	StatusQuote            CharterStatus = "quote"
	StatusConfirmed        CharterStatus = "confirmed"
	StatusDispatched       CharterStatus = "dispatched"
	StatusOnDuty           CharterStatus = "on_duty"
	StatusOnLocation       CharterStatus = "on_location"
	StatusPassengersLoaded CharterStatus = "passengers_loaded"
	StatusEnRoute          CharterStatus = "en_route"
	StatusAtEvent          CharterStatus = "at_event"
	StatusReturnJourney    CharterStatus = "return_journey"
	StatusCompleted        CharterStatus = "completed"
	StatusInvoiced         CharterStatus = "invoiced"
	StatusPaid             CharterStatus = "paid"
	StatusArchived         CharterStatus = "archived"
	StatusCancelled        CharterStatus = "cancelled"

	// StatusAuditReview marks placeholder charters (refund pairs, audit artifacts).
	// They are booked directly into this state and never enter the service flow.
	StatusAuditReview CharterStatus = "audit_review"
)

// serviceCheckpoints in strict forward order.
var serviceCheckpoints = []CharterStatus{
	StatusOnDuty,
	StatusOnLocation,
	StatusPassengersLoaded,
	StatusEnRoute,
	StatusAtEvent,
	StatusReturnJourney,
}

// allowedTransitions is the closed lifecycle table. A transition that is not
// listed here is illegal, there is no way around it.
var allowedTransitions = map[CharterStatus][]CharterStatus{
	StatusQuote:            {StatusConfirmed, StatusCancelled},
	StatusConfirmed:        {StatusDispatched, StatusCancelled},
	StatusDispatched:       {StatusOnDuty, StatusCancelled},
	StatusOnDuty:           {StatusOnLocation, StatusCompleted, StatusCancelled},
	StatusOnLocation:       {StatusPassengersLoaded, StatusCompleted, StatusCancelled},
	StatusPassengersLoaded: {StatusEnRoute, StatusCompleted, StatusCancelled},
	StatusEnRoute:          {StatusAtEvent, StatusCompleted, StatusCancelled},
	StatusAtEvent:          {StatusReturnJourney, StatusCompleted, StatusCancelled},
	StatusReturnJourney:    {StatusCompleted, StatusCancelled},
	StatusCompleted:        {StatusInvoiced},
	StatusInvoiced:         {StatusPaid},
	StatusPaid:             {StatusArchived},
	StatusCancelled:        {StatusArchived},
	StatusArchived:         {},
	StatusAuditReview:      {},
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle move.
func (s CharterStatus) CanTransitionTo(next CharterStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsInService reports whether s is one of the service checkpoints between
// dispatch acknowledgement and completion.
func (s CharterStatus) IsInService() bool {
	for _, checkpoint := range serviceCheckpoints {
		if s == checkpoint {
			return true
		}
	}

	return false
}

// IsPreCompletion reports whether a charter in this status can still be cancelled.
func (s CharterStatus) IsPreCompletion() bool {
	switch s {
	case StatusQuote, StatusConfirmed, StatusDispatched:
		return true
	default:
		return s.IsInService()
	}
}

// IsPlaceholder reports whether this status marks an accounting artifact rather
// than a real charter.
func (s CharterStatus) IsPlaceholder() bool {
	return s == StatusAuditReview
}

// NextCheckpoint returns the service checkpoint that follows this status,
// starting from StatusDispatched. The second return value is false when no
// further checkpoint exists.
func (s CharterStatus) NextCheckpoint() (CharterStatus, bool) {
	if s == StatusDispatched {
		return serviceCheckpoints[0], true
	}

	for i, checkpoint := range serviceCheckpoints {
		if s == checkpoint && i+1 < len(serviceCheckpoints) {
			return serviceCheckpoints[i+1], true
		}
	}

	return "", false
}

func (s CharterStatus) String() string {
	return string(s)
}
