package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple journal Records to DomainEvents.
func DomainEventsFrom(records charterstore.Records) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0)

	for _, record := range records {
		domainEvent, err := DomainEventFrom(record)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a journal Record to its corresponding DomainEvent.
func DomainEventFrom(record charterstore.Record) (core.DomainEvent, error) { //nolint:funlen,gocyclo // one case per event type
	switch record.EventType {
	case core.CharterBookedEventType:
		return unmarshalPayload[core.CharterBooked](record.PayloadJSON)

	case core.CharterConfirmedEventType:
		return unmarshalPayload[core.CharterConfirmed](record.PayloadJSON)

	case core.DispatchAcknowledgedEventType:
		return unmarshalPayload[core.DispatchAcknowledged](record.PayloadJSON)

	case core.ServiceCheckpointReachedEventType:
		return unmarshalPayload[core.ServiceCheckpointReached](record.PayloadJSON)

	case core.CharterCompletedEventType:
		return unmarshalPayload[core.CharterCompleted](record.PayloadJSON)

	case core.CharterCancelledEventType:
		return unmarshalPayload[core.CharterCancelled](record.PayloadJSON)

	case core.CharterCancellationRefusedEventType:
		return unmarshalPayload[core.CharterCancellationRefused](record.PayloadJSON)

	case core.CharterLockedEventType:
		return unmarshalPayload[core.CharterLocked](record.PayloadJSON)

	case core.CharterUnlockedEventType:
		return unmarshalPayload[core.CharterUnlocked](record.PayloadJSON)

	case core.CharterArchivedEventType:
		return unmarshalPayload[core.CharterArchived](record.PayloadJSON)

	case core.RouteLegPlannedEventType:
		return unmarshalPayload[core.RouteLegPlanned](record.PayloadJSON)

	case core.RouteLegActualsRecordedEventType:
		return unmarshalPayload[core.RouteLegActualsRecorded](record.PayloadJSON)

	case core.DutyDayRecordedEventType:
		return unmarshalPayload[core.DutyDayRecorded](record.PayloadJSON)

	case core.IncidentRecordedEventType:
		return unmarshalPayload[core.IncidentRecorded](record.PayloadJSON)

	case core.IncidentResolvedEventType:
		return unmarshalPayload[core.IncidentResolved](record.PayloadJSON)

	case core.DriverPayPreparedEventType:
		return unmarshalPayload[core.DriverPayPrepared](record.PayloadJSON)

	case core.DriverPayAdjustedEventType:
		return unmarshalPayload[core.DriverPayAdjusted](record.PayloadJSON)

	case core.DriverPayApprovedEventType:
		return unmarshalPayload[core.DriverPayApproved](record.PayloadJSON)

	case core.DriverPaySettledEventType:
		return unmarshalPayload[core.DriverPaySettled](record.PayloadJSON)

	case core.ChargeRecordedEventType:
		return unmarshalPayload[core.ChargeRecorded](record.PayloadJSON)

	case core.ChargeRemovedEventType:
		return unmarshalPayload[core.ChargeRemoved](record.PayloadJSON)

	case core.ChargeRemovalRefusedEventType:
		return unmarshalPayload[core.ChargeRemovalRefused](record.PayloadJSON)

	case core.InvoiceOpenedEventType:
		return unmarshalPayload[core.InvoiceOpened](record.PayloadJSON)

	case core.InvoiceFinalizedEventType:
		return unmarshalPayload[core.InvoiceFinalized](record.PayloadJSON)

	case core.InvoiceVoidedEventType:
		return unmarshalPayload[core.InvoiceVoided](record.PayloadJSON)

	case core.PaymentAppliedEventType:
		return unmarshalPayload[core.PaymentApplied](record.PayloadJSON)

	case core.CreditIssuedEventType:
		return unmarshalPayload[core.CreditIssued](record.PayloadJSON)

	case core.CreditAppliedEventType:
		return unmarshalPayload[core.CreditApplied](record.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}
}

// unmarshalPayload decodes a record payload into the concrete event type.
// The payload carries every field of the event including its EventType, so
// decoding into the zero value restores the event completely.
func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
