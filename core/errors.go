package core

import "errors"

// Business rule violations surfaced by Decide functions and handlers.
// Callers match them with errors.Is; the operations facade translates them
// into caller-facing results.
var (
	// ErrCharterNotFound is returned when a referenced charter has never been booked.
	ErrCharterNotFound = errors.New("charter not found")

	// ErrDuplicateReserveNumber is returned when booking a reserve number that is already in use.
	ErrDuplicateReserveNumber = errors.New("reserve number already booked")

	// ErrInvalidTransition is returned when a lifecycle move is not legal from the current status.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")

	// ErrCharterLocked is returned when a mutating operation hits a locked charter.
	ErrCharterLocked = errors.New("charter is locked")

	// ErrCharterArchived is returned when a mutating operation hits an archived charter.
	ErrCharterArchived = errors.New("charter is archived")

	// ErrAuditArtifact is returned when a service operation is attempted on a placeholder charter.
	ErrAuditArtifact = errors.New("charter is an audit artifact")

	// ErrInvalidSequence is returned when a route leg sequence is zero or negative.
	ErrInvalidSequence = errors.New("route leg sequence must be positive")

	// ErrDuplicateSequence is returned when a route leg sequence is already planned.
	ErrDuplicateSequence = errors.New("route leg sequence already planned")

	// ErrLegNotFound is returned when actuals are recorded for a leg that was never planned.
	ErrLegNotFound = errors.New("route leg not planned")

	// ErrIncidentNotFound is returned when resolving an incident that was never recorded.
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrUnresolvedIncident is returned when finalization is blocked by an open major incident.
	ErrUnresolvedIncident = errors.New("unresolved major incident")

	// ErrApprovalRequired is returned when an operation needs a manager approval it does not have.
	ErrApprovalRequired = errors.New("manager approval required")

	// ErrInvoiceFinalized is returned when charges are mutated after finalization.
	ErrInvoiceFinalized = errors.New("invoice is finalized")

	// ErrInvoiceVoid is returned when payments or finalization hit a voided invoice.
	ErrInvoiceVoid = errors.New("invoice is void")

	// ErrInvoiceNotOpen is returned when finalizing a charter whose invoice was never opened.
	ErrInvoiceNotOpen = errors.New("invoice not open")

	// ErrChargeNotFound is returned when removing a charge that does not exist.
	ErrChargeNotFound = errors.New("charge not found")

	// ErrPayNotPrepared is returned when adjusting or approving pay that was never prepared.
	ErrPayNotPrepared = errors.New("driver pay not prepared")

	// ErrPayAlreadyApproved is returned when adjusting pay after approval.
	ErrPayAlreadyApproved = errors.New("driver pay already approved")

	// ErrPayNotApproved is returned when settling pay that has not been approved.
	ErrPayNotApproved = errors.New("driver pay not approved")

	// ErrInsufficientCredit is returned when applying more credit than remains.
	ErrInsufficientCredit = errors.New("credit balance insufficient")

	// ErrCreditNotFound is returned when applying a credit that was never issued.
	ErrCreditNotFound = errors.New("credit not found")

	// ErrInvalidAmount is returned when a monetary amount is out of range for the operation.
	ErrInvalidAmount = errors.New("amount out of range")

	// ErrUnknownChargeType is returned when a charge names a type outside the catalogue.
	ErrUnknownChargeType = errors.New("unknown charge type")

	// ErrUnknownIncidentType is returned when an incident names a type outside the catalogue.
	ErrUnknownIncidentType = errors.New("unknown incident type")

	// ErrUnknownSeverity is returned when an incident severity is neither minor nor major.
	ErrUnknownSeverity = errors.New("unknown incident severity")

	// ErrUnknownCreditReason is returned when a credit reason code is outside the catalogue.
	ErrUnknownCreditReason = errors.New("unknown credit reason")

	// ErrLockedPeriod is returned when an effective date falls within a closed fiscal period.
	// It is fatal: handlers never retry it and the operation is rejected outright.
	ErrLockedPeriod = errors.New("effective date falls in a locked fiscal period")
)
