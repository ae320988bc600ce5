package shell

import (
	"errors"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ErrEventEnvelopeFromRecordFailed is returned when event envelope conversion fails
var ErrEventEnvelopeFromRecordFailed = errors.New("event envelope from record failed")

// EventEnvelopes is a slice of EventEnvelope instances
type EventEnvelopes = []EventEnvelope

// EventEnvelope combines a domain event with its metadata
type EventEnvelope struct {
	DomainEvent   core.DomainEvent
	EventMetadata EventMetadata
}

// BuildEventEnvelope creates a new EventEnvelope from domain event and metadata
func BuildEventEnvelope(domainEvent core.DomainEvent, eventMetadata EventMetadata) EventEnvelope {
	return EventEnvelope{
		DomainEvent:   domainEvent,
		EventMetadata: eventMetadata,
	}
}

// EventEnvelopeFrom converts a journal Record to an EventEnvelope
func EventEnvelopeFrom(record charterstore.Record) (EventEnvelope, error) {
	metadata, err := EventMetadataFrom(record)
	if err != nil {
		return EventEnvelope{}, errors.Join(ErrEventEnvelopeFromRecordFailed, err)
	}

	domainEvent, err := DomainEventFrom(record)
	if err != nil {
		return EventEnvelope{}, errors.Join(ErrEventEnvelopeFromRecordFailed, err)
	}

	return BuildEventEnvelope(domainEvent, metadata), nil
}

// EventEnvelopesFrom converts multiple journal Records to EventEnvelopes
func EventEnvelopesFrom(records charterstore.Records) (EventEnvelopes, error) {
	envelopes := make(EventEnvelopes, 0)

	for _, record := range records {
		envelope, err := EventEnvelopeFrom(record)
		if err != nil {
			return nil, err
		}

		envelopes = append(envelopes, envelope)
	}

	return envelopes, nil
}
