package shell

import (
	"encoding/json"
	"errors"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/core"
)

// ErrMappingToRecordFailedForDomainEvent is returned when domain event serialization fails
var ErrMappingToRecordFailedForDomainEvent = errors.New("mapping to record failed for domain event")

// ErrMappingToRecordFailedForMetadata is returned when metadata serialization fails
var ErrMappingToRecordFailedForMetadata = errors.New("mapping to record failed for metadata")

// RecordFrom converts a DomainEvent and EventMetadata to a journal Record
func RecordFrom(event core.DomainEvent, metadata EventMetadata) (charterstore.Record, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return charterstore.Record{}, errors.Join(ErrMappingToRecordFailedForDomainEvent, err)
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return charterstore.Record{}, errors.Join(ErrMappingToRecordFailedForMetadata, err)
	}

	record, err := charterstore.BuildRecord(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)

	if err != nil {
		return charterstore.Record{}, errors.Join(ErrMappingToRecordFailedForDomainEvent, err)
	}

	return record, nil
}

// RecordWithEmptyMetadataFrom converts a DomainEvent to a journal Record with empty metadata
func RecordWithEmptyMetadataFrom(event core.DomainEvent) (charterstore.Record, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return charterstore.Record{}, errors.Join(ErrMappingToRecordFailedForDomainEvent, err)
	}

	record, err := charterstore.BuildRecordWithEmptyMetadata(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
	)

	if err != nil {
		return charterstore.Record{}, errors.Join(ErrMappingToRecordFailedForDomainEvent, err)
	}

	return record, nil
}

// RecordsFrom converts multiple DomainEvents sharing the same EventMetadata to journal Records.
// Command handlers use it when a single decision emits more than one event, so all of them
// carry the same causation and correlation chain.
func RecordsFrom(events core.DomainEvents, metadata EventMetadata) (charterstore.Records, error) {
	records := make(charterstore.Records, 0, len(events))

	for _, event := range events {
		record, err := RecordFrom(event, metadata)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
