package charterstore

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

// Records is an alias type for a slice of Record
type Records = []Record

// Record is a DTO (data transfer object) used by the Journal to append charter events
// and query them back.
//
// It is built on scalars to be completely agnostic of the implementation of Domain Events
// in the client code.
//
// While its properties are exported, it should only be constructed with the supplied
// factory methods:
//   - BuildRecord
//   - BuildRecordWithEmptyMetadata
type Record struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildRecord is a factory method for Record.
//
// It populates the Record with the given scalar input.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildRecord(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (Record, error) {
	if !json.Valid(payloadJSON) {
		return Record{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return Record{}, ErrInvalidMetadataJSON
	}

	return Record{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildRecordWithEmptyMetadata is a factory method for Record.
//
// It populates the Record with the given scalar input and creates valid empty JSON
// for MetadataJSON.
// Returns an error if payloadJSON is not valid JSON.
func BuildRecordWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (Record, error) {
	return BuildRecord(eventType, occurredAt, payloadJSON, []byte("{}"))
}
