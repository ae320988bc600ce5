package memoryengine_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arrowlimo/arrow-limo-sub005/charterstore"
	"github.com/arrowlimo/arrow-limo-sub005/charterstore/memoryengine"
)

func Test_Journal_Query_EmptyStream(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	scope := givenCharterScope("RES-00042")

	// act
	records, maxSequence, err := journal.Query(ctx, scope)

	// assert
	assert.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, uint(0), maxSequence)
}

func Test_Journal_AppendAndQuery_ScopedPerCharter(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()

	scopeA := givenCharterScope("RES-00042")
	scopeB := givenCharterScope("RES-00043")

	err := journal.Append(ctx, scopeA, 0, givenRecord(t, "CharterBooked", "RES-00042"))
	assert.NoError(t, err)
	err = journal.Append(ctx, scopeB, 0, givenRecord(t, "CharterBooked", "RES-00043"))
	assert.NoError(t, err)
	err = journal.Append(ctx, scopeA, 1, givenRecord(t, "ChargeRecorded", "RES-00042"))
	assert.NoError(t, err)

	// act
	records, maxSequence, err := journal.Query(ctx, scopeA)

	// assert
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "CharterBooked", records[0].EventType)
	assert.Equal(t, "ChargeRecorded", records[1].EventType)
	assert.Equal(t, uint(3), maxSequence, "sequence numbers are global, the stream max is the last matching record")

	otherRecords, otherMax, err := journal.Query(ctx, scopeB)
	assert.NoError(t, err)
	assert.Len(t, otherRecords, 1)
	assert.Equal(t, uint(2), otherMax)
}

func Test_Journal_Append_SequenceConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	scope := givenCharterScope("RES-00042")

	err := journal.Append(ctx, scope, 0, givenRecord(t, "CharterBooked", "RES-00042"))
	assert.NoError(t, err)

	// act: a second writer appends with the same expectation
	err = journal.Append(ctx, scope, 0, givenRecord(t, "CharterLocked", "RES-00042"))

	// assert
	assert.ErrorIs(t, err, charterstore.ErrSequenceConflict)

	records, _, queryErr := journal.Query(ctx, scope)
	assert.NoError(t, queryErr)
	assert.Len(t, records, 1, "the losing append must not be stored")
}

func Test_Journal_Append_ConflictIsScopedPerStream(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()

	err := journal.Append(ctx, givenCharterScope("RES-00042"), 0, givenRecord(t, "CharterBooked", "RES-00042"))
	assert.NoError(t, err)

	// act: another charter's stream is still empty
	err = journal.Append(ctx, givenCharterScope("RES-00043"), 0, givenRecord(t, "CharterBooked", "RES-00043"))

	// assert
	assert.NoError(t, err)
}

func Test_Journal_Append_MultipleRecordsInOneAppend(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	scope := givenCharterScope("RES-00042")

	// act
	err := journal.Append(ctx, scope, 0,
		givenRecord(t, "CharterCancelled", "RES-00042"),
		givenRecord(t, "CreditIssued", "RES-00042"))

	// assert
	assert.NoError(t, err)

	records, maxSequence, queryErr := journal.Query(ctx, scope)
	assert.NoError(t, queryErr)
	assert.Len(t, records, 2)
	assert.Equal(t, uint(2), maxSequence)
}

func Test_Journal_Query_ResumeAfterSequence(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	scope := givenCharterScope("RES-00042")

	err := journal.Append(ctx, scope, 0, givenRecord(t, "CharterBooked", "RES-00042"))
	assert.NoError(t, err)
	err = journal.Append(ctx, scope, 1, givenRecord(t, "ChargeRecorded", "RES-00042"))
	assert.NoError(t, err)
	err = journal.Append(ctx, scope, 2, givenRecord(t, "PaymentApplied", "RES-00042"))
	assert.NoError(t, err)

	// act
	records, maxSequence, queryErr := journal.Query(ctx, scope.ResumeAfterSequence(1))

	// assert
	assert.NoError(t, queryErr)
	assert.Len(t, records, 2)
	assert.Equal(t, "ChargeRecorded", records[0].EventType)
	assert.Equal(t, uint(3), maxSequence)
}

func Test_Journal_Query_OccurredBounds(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	scope := givenCharterScope("RES-00042")

	early := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)

	err := journal.Append(ctx, scope, 0, givenRecordAt(t, "CharterBooked", "RES-00042", early))
	assert.NoError(t, err)
	err = journal.Append(ctx, scope, 1, givenRecordAt(t, "ChargeRecorded", "RES-00042", late))
	assert.NoError(t, err)

	boundedScope := charterstore.BuildScope().
		Matching().
		AnyTagOf(charterstore.T("ReserveNumber", "RES-00042")).
		OccurredFrom(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)).
		Finalize()

	// act
	records, _, queryErr := journal.Query(ctx, boundedScope)

	// assert
	assert.NoError(t, queryErr)
	assert.Len(t, records, 1)
	assert.Equal(t, "ChargeRecorded", records[0].EventType)
}

func Test_Journal_Query_AllTagsMustMatch(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()
	anyScope := charterstore.BuildScope().MatchingAnyEvent()

	payload := []byte(`{"ReserveNumber": "RES-00042", "DriverID": "D-100"}`)
	record, err := charterstore.BuildRecordWithEmptyMetadata("CharterDispatched", time.Now(), payload)
	assert.NoError(t, err)
	assert.NoError(t, journal.Append(ctx, anyScope, 0, record))

	matching := charterstore.BuildScope().
		Matching().
		AllTagsOf(
			charterstore.T("ReserveNumber", "RES-00042"),
			charterstore.T("DriverID", "D-100")).
		Finalize()

	missingOne := charterstore.BuildScope().
		Matching().
		AllTagsOf(
			charterstore.T("ReserveNumber", "RES-00042"),
			charterstore.T("DriverID", "D-999")).
		Finalize()

	// act + assert
	found, _, queryErr := journal.Query(ctx, matching)
	assert.NoError(t, queryErr)
	assert.Len(t, found, 1)

	none, _, queryErr := journal.Query(ctx, missingOne)
	assert.NoError(t, queryErr)
	assert.Empty(t, none)
}

func Test_Journal_Snapshots_SaveLoadDelete(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()

	snapshot, err := charterstore.BuildSnapshot(
		"HOSSummary:D-100",
		givenCharterScope("RES-00042").Hash(),
		7,
		json.RawMessage(`{"DriverID": "D-100"}`),
	)
	assert.NoError(t, err)

	// act
	err = journal.SaveSnapshot(ctx, snapshot)

	// assert
	assert.NoError(t, err)

	loaded, err := journal.LoadSnapshot(ctx, snapshot.ProjectionType, snapshot.ScopeHash)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Equal(t, uint(7), loaded.SequenceNumber)
	assert.JSONEq(t, `{"DriverID": "D-100"}`, string(loaded.Data))

	missing, err := journal.LoadSnapshot(ctx, "HOSSummary:D-999", snapshot.ScopeHash)
	assert.NoError(t, err)
	assert.Nil(t, missing, "a snapshot miss is not an error")

	err = journal.DeleteSnapshot(ctx, snapshot.ProjectionType, snapshot.ScopeHash)
	assert.NoError(t, err)

	gone, err := journal.LoadSnapshot(ctx, snapshot.ProjectionType, snapshot.ScopeHash)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func Test_Journal_SaveSnapshot_RejectsInvalidSnapshot(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := memoryengine.NewJournal()

	invalid := charterstore.Snapshot{
		ProjectionType: "",
		ScopeHash:      "sha256:abc",
		Data:           json.RawMessage(`{}`),
	}

	// act
	err := journal.SaveSnapshot(ctx, invalid)

	// assert
	assert.ErrorIs(t, err, charterstore.ErrEmptyProjectionType)
}

// --- fixtures ---

func givenCharterScope(reserveNumber string) charterstore.Scope {
	return charterstore.BuildScope().
		Matching().
		AnyTagOf(charterstore.T("ReserveNumber", reserveNumber)).
		Finalize()
}

func givenRecord(t *testing.T, eventType string, reserveNumber string) charterstore.Record {
	t.Helper()

	return givenRecordAt(t, eventType, reserveNumber, time.Now())
}

func givenRecordAt(t *testing.T, eventType string, reserveNumber string, occurredAt time.Time) charterstore.Record {
	t.Helper()

	payload := []byte(`{"ReserveNumber": "` + reserveNumber + `"}`)

	record, err := charterstore.BuildRecordWithEmptyMetadata(eventType, occurredAt, payload)
	assert.NoError(t, err)

	return record
}
