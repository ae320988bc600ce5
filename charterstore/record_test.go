package charterstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildRecord_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"ReserveNumber": "RES-00042"}`)
	validMetadataJSON := []byte(`{"CausationID": "cause-789"}`)

	tests := []struct {
		name         string
		eventType    string
		occurredAt   time.Time
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "invalid payload JSON",
			eventType:    "ChargeRecorded",
			occurredAt:   validTime,
			payloadJSON:  []byte(`{"invalid": json}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			eventType:    "ChargeRecorded",
			occurredAt:   validTime,
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"invalid": json}`),
			expectedErr:  ErrInvalidMetadataJSON,
		},
		{
			name:         "empty payload JSON",
			eventType:    "ChargeRecorded",
			occurredAt:   validTime,
			payloadJSON:  []byte(``),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "empty metadata JSON",
			eventType:    "ChargeRecorded",
			occurredAt:   validTime,
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(``),
			expectedErr:  ErrInvalidMetadataJSON,
		},
		{
			name:         "nil payload JSON",
			eventType:    "ChargeRecorded",
			occurredAt:   validTime,
			payloadJSON:  nil,
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "nil metadata JSON",
			eventType:    "ChargeRecorded",
			occurredAt:   validTime,
			payloadJSON:  validPayloadJSON,
			metadataJSON: nil,
			expectedErr:  ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRecord(tt.eventType, tt.occurredAt, tt.payloadJSON, tt.metadataJSON)
			assert.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func Test_BuildRecordWithEmptyMetadata_ErrorCases(t *testing.T) {
	validTime := time.Now()

	tests := []struct {
		name        string
		eventType   string
		occurredAt  time.Time
		payloadJSON []byte
		expectedErr error
	}{
		{
			name:        "invalid payload JSON",
			eventType:   "ChargeRecorded",
			occurredAt:  validTime,
			payloadJSON: []byte(`{"invalid": json}`),
			expectedErr: ErrInvalidPayloadJSON,
		},
		{
			name:        "empty payload JSON",
			eventType:   "ChargeRecorded",
			occurredAt:  validTime,
			payloadJSON: []byte(``),
			expectedErr: ErrInvalidPayloadJSON,
		},
		{
			name:        "nil payload JSON",
			eventType:   "ChargeRecorded",
			occurredAt:  validTime,
			payloadJSON: nil,
			expectedErr: ErrInvalidPayloadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRecordWithEmptyMetadata(tt.eventType, tt.occurredAt, tt.payloadJSON)
			assert.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func Test_BuildRecord_Success(t *testing.T) {
	eventType := "CharterBooked"
	occurredAt := time.Now()
	payloadJSON := []byte(`{"ReserveNumber": "RES-00042", "ClientID": "CL-1001"}`)
	metadataJSON := []byte(`{"CausationID": "cause-789"}`)

	record, err := BuildRecord(eventType, occurredAt, payloadJSON, metadataJSON)
	assert.NoError(t, err)
	assert.Equal(t, eventType, record.EventType)
	assert.Equal(t, occurredAt, record.OccurredAt)
	assert.Equal(t, payloadJSON, record.PayloadJSON)
	assert.Equal(t, metadataJSON, record.MetadataJSON)
}

func Test_BuildRecordWithEmptyMetadata_Success(t *testing.T) {
	eventType := "PaymentApplied"
	occurredAt := time.Now()
	payloadJSON := []byte(`{"ReserveNumber": "RES-00042", "PaymentID": "PMT-1"}`)

	record, err := BuildRecordWithEmptyMetadata(eventType, occurredAt, payloadJSON)
	assert.NoError(t, err)
	assert.Equal(t, eventType, record.EventType)
	assert.Equal(t, occurredAt, record.OccurredAt)
	assert.Equal(t, payloadJSON, record.PayloadJSON)
	assert.Equal(t, []byte(`{}`), record.MetadataJSON)
}
