package charterops

import (
	"errors"

	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ErrUnknownClient indicates a booking referenced a client the client
// directory has no record of.
var ErrUnknownClient = errors.New("client is not known to the client directory")

// refusalSentinels are the domain refusals the facade translates into typed
// results with Success false. Anything outside this list is an
// infrastructure failure and surfaces as a plain error.
var refusalSentinels = []error{
	core.ErrCharterNotFound,
	core.ErrDuplicateReserveNumber,
	core.ErrInvalidTransition,
	core.ErrCharterLocked,
	core.ErrCharterArchived,
	core.ErrAuditArtifact,
	core.ErrInvalidSequence,
	core.ErrDuplicateSequence,
	core.ErrLegNotFound,
	core.ErrIncidentNotFound,
	core.ErrUnresolvedIncident,
	core.ErrApprovalRequired,
	core.ErrInvoiceFinalized,
	core.ErrInvoiceVoid,
	core.ErrInvoiceNotOpen,
	core.ErrChargeNotFound,
	core.ErrPayNotPrepared,
	core.ErrPayAlreadyApproved,
	core.ErrPayNotApproved,
	core.ErrInsufficientCredit,
	core.ErrCreditNotFound,
	core.ErrInvalidAmount,
	core.ErrUnknownChargeType,
	core.ErrUnknownIncidentType,
	core.ErrUnknownSeverity,
	core.ErrUnknownCreditReason,
	core.ErrLockedPeriod,
	ErrUnknownClient,
}

// isBusinessRefusal reports whether err is a domain refusal rather than an
// infrastructure failure.
func isBusinessRefusal(err error) bool {
	for _, sentinel := range refusalSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
